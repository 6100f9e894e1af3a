package components

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

var (
	boxBorder        lipgloss.Style
	boxBorderActive  lipgloss.Style
	boxHeaderStyle   lipgloss.Style
	errorBorder      lipgloss.Style
	errorHeaderStyle lipgloss.Style
	errorBodyStyle   lipgloss.Style
	mutedStyle       lipgloss.Style
)

// boxWidth takes most of the terminal, within 40..96 columns.
func boxWidth(width int) int {
	if width <= 0 {
		return 0
	}
	return min(max(width*80/100, 40), 96)
}

func safeBoxWidth(width int) int {
	w := boxWidth(width)
	if width > 0 && w > width {
		return width
	}
	return w
}

// framed renders content so the outer width, border included, fits width.
func framed(style lipgloss.Style, content string, width int) string {
	w := safeBoxWidth(width)
	if w <= 0 {
		return style.Render(content)
	}
	return style.Width(max(w-style.GetHorizontalBorderSize(), 1)).Render(content)
}

// Box renders content inside a bordered box.
func Box(content string, width int) string {
	return framed(boxBorder, content, width)
}

// ActiveBox renders content inside a highlighted bordered box.
func ActiveBox(content string, width int) string {
	return framed(boxBorderActive, content, width)
}

// BoxContentWidth returns the usable width inside Box for a terminal width.
func BoxContentWidth(width int) int {
	w := safeBoxWidth(width)
	// border 2 + padding 4
	return max(w-6, 0)
}

// ErrorBox renders a red bordered box for errors.
func ErrorBox(title, message string, width int) string {
	var b strings.Builder
	if title != "" {
		b.WriteString(errorHeaderStyle.Render(title))
		b.WriteString("\n\n")
	}
	b.WriteString(errorBodyStyle.Render(SanitizeText(message)))
	return framed(errorBorder, b.String(), width)
}

// TitledBox renders a box with its title set into the top border.
func TitledBox(title, content string, width int) string {
	return titled(title, framed(boxBorder, content, width), active.Border)
}

// ActiveTitledBox is TitledBox with the highlighted border.
func ActiveTitledBox(title, content string, width int) string {
	return titled(title, framed(boxBorderActive, content, width), active.Accent)
}

func titled(title, boxed string, borderColor lipgloss.Color) string {
	if title == "" {
		return boxed
	}
	lines := strings.Split(boxed, "\n")
	full := lipgloss.Width(lines[0])
	if full < 4 {
		return boxed
	}

	inner := full - 2
	label := fmt.Sprintf(" [ %s ] ", SanitizeOneLine(title))
	if lipgloss.Width(label) > inner {
		label = truncateRunes(label, inner)
	}
	left := max((inner-lipgloss.Width(label))/2, 0)
	right := max(inner-lipgloss.Width(label)-left, 0)

	edge := lipgloss.RoundedBorder()
	paint := lipgloss.NewStyle().Foreground(borderColor)
	top := paint.Render(edge.TopLeft+strings.Repeat(edge.Top, left)) +
		boxHeaderStyle.Render(label) +
		paint.Render(strings.Repeat(edge.Top, right)+edge.TopRight)

	lines[0] = top
	return strings.Join(lines, "\n")
}

// ClampTextWidth flattens text to one line and cuts it to width columns.
func ClampTextWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	flat := SanitizeOneLine(text)
	if lipgloss.Width(flat) <= width {
		return flat
	}
	if width == 1 {
		return "…"
	}
	return truncateRunes(flat, width-1) + "…"
}

// PadRight pads s with spaces up to width visible columns.
func PadRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// Muted renders text in the muted color.
func Muted(text string) string {
	return mutedStyle.Render(text)
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

// Indent prefixes every line of s with the given number of spaces.
func Indent(s string, spaces int) string {
	pad := strings.Repeat(" ", spaces)
	return pad + strings.ReplaceAll(s, "\n", "\n"+pad)
}
