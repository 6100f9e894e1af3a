package components

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors shared by every component.
type Palette struct {
	Border  lipgloss.Color
	Accent  lipgloss.Color
	Muted   lipgloss.Color
	Text    lipgloss.Color
	Label   lipgloss.Color
	Error   lipgloss.Color
	ErrBody lipgloss.Color
	KeyCap  lipgloss.Color
	KeyText lipgloss.Color
}

// DarkPalette is the default palette.
var DarkPalette = Palette{
	Border:  lipgloss.Color("#273540"),
	Accent:  lipgloss.Color("#7f57b4"),
	Muted:   lipgloss.Color("#9ba0bf"),
	Text:    lipgloss.Color("#d7d9da"),
	Label:   lipgloss.Color("#436b77"),
	Error:   lipgloss.Color("#e06c75"),
	ErrBody: lipgloss.Color("#d6b5b5"),
	KeyCap:  lipgloss.Color("#888ba4"),
	KeyText: lipgloss.Color("#16161d"),
}

// LightPalette suits terminals with a light background.
var LightPalette = Palette{
	Border:  lipgloss.Color("#b8c4cc"),
	Accent:  lipgloss.Color("#5b3a8c"),
	Muted:   lipgloss.Color("#5f6478"),
	Text:    lipgloss.Color("#1f2328"),
	Label:   lipgloss.Color("#2c5561"),
	Error:   lipgloss.Color("#b3261e"),
	ErrBody: lipgloss.Color("#6e2b2b"),
	KeyCap:  lipgloss.Color("#d0d3e0"),
	KeyText: lipgloss.Color("#16161d"),
}

var active = DarkPalette

// SetPalette switches the colors used by subsequent renders.
func SetPalette(p Palette) {
	active = p
	buildStyles()
}

// CurrentPalette returns the palette in use.
func CurrentPalette() Palette {
	return active
}

func init() {
	buildStyles()
}

func buildStyles() {
	frame := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c).
			Padding(1, 2)
	}

	boxBorder = frame(active.Border)
	boxBorderActive = frame(active.Accent)
	errorBorder = frame(active.Error)
	boxHeaderStyle = lipgloss.NewStyle().Foreground(active.Accent).Bold(true)
	errorHeaderStyle = lipgloss.NewStyle().Foreground(active.Error).Bold(true)
	errorBodyStyle = lipgloss.NewStyle().Foreground(active.ErrBody)
	mutedStyle = lipgloss.NewStyle().Foreground(active.Muted)

	dialogStyle = frame(active.Border).Width(40)

	hintDescStyle = mutedStyle
	keyCapStyle = lipgloss.NewStyle().
		Foreground(active.KeyText).
		Background(active.KeyCap).
		Bold(true).
		Padding(0, 1)
	segmentStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(active.Border).
		Padding(0, 1).
		MarginRight(1)
}
