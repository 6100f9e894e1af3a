package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/objedit/internal/ui/components"
)

// --- Theme Colors ---

var (
	ColorPrimary lipgloss.Color
	ColorKey     lipgloss.Color
	ColorText    lipgloss.Color
	ColorMuted   lipgloss.Color
	ColorSuccess lipgloss.Color
	ColorError   lipgloss.Color
	ColorWarning lipgloss.Color
	ColorCursor  lipgloss.Color
)

// --- Reusable Styles ---

var (
	SelectedStyle  lipgloss.Style
	NormalStyle    lipgloss.Style
	MutedStyle     lipgloss.Style
	SuccessStyle   lipgloss.Style
	ErrorStyle     lipgloss.Style
	WarningStyle   lipgloss.Style
	AccentStyle    lipgloss.Style
	CellFocusStyle lipgloss.Style
	MetaKeyStyle   lipgloss.Style
	MetaValueStyle lipgloss.Style
	MetaPunctStyle lipgloss.Style
)

func init() {
	ApplyTheme("dark")
}

// ApplyTheme switches every style to the named theme. Unknown names fall
// back to dark.
func ApplyTheme(name string) {
	if name == "light" {
		ColorPrimary = lipgloss.Color("#5b3a8c")
		ColorKey = lipgloss.Color("#2c5561")
		ColorText = lipgloss.Color("#1f2328")
		ColorMuted = lipgloss.Color("#5f6478")
		ColorSuccess = lipgloss.Color("#2e6b4f")
		ColorError = lipgloss.Color("#b3261e")
		ColorWarning = lipgloss.Color("#8a5a1c")
		ColorCursor = lipgloss.Color("#e6dcf5")
		components.SetPalette(components.LightPalette)
	} else {
		ColorPrimary = lipgloss.Color("#7f57b4") // purple
		ColorKey = lipgloss.Color("#436b77")     // teal
		ColorText = lipgloss.Color("#d7d9da")
		ColorMuted = lipgloss.Color("#9ba0bf")
		ColorSuccess = lipgloss.Color("#3f866b")
		ColorError = lipgloss.Color("#e06c75")
		ColorWarning = lipgloss.Color("#c78854")
		ColorCursor = lipgloss.Color("#2a2238")
		components.SetPalette(components.DarkPalette)
	}

	SelectedStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	NormalStyle = lipgloss.NewStyle().Foreground(ColorText)
	MutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	AccentStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	CellFocusStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Background(ColorCursor).
		Bold(true)
	MetaKeyStyle = lipgloss.NewStyle().Foreground(ColorKey).Bold(true)
	MetaValueStyle = lipgloss.NewStyle().Foreground(ColorText)
	MetaPunctStyle = lipgloss.NewStyle().Foreground(ColorMuted)
}
