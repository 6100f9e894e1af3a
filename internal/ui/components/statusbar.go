package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	hintDescStyle lipgloss.Style
	keyCapStyle   lipgloss.Style
	segmentStyle  lipgloss.Style
)

// StatusBar renders key hints as bordered segments, wrapping rows to width.
func StatusBar(hints []string, width int) string {
	segments := make([]string, 0, len(hints))
	for _, h := range hints {
		segments = append(segments, segmentStyle.Render(h))
	}
	rows := wrapSegments(segments, width)
	if len(rows) == 0 {
		return ""
	}
	bar := lipgloss.NewStyle().PaddingLeft(2)
	if width > 0 {
		bar = bar.Width(width)
	}
	return bar.Render(strings.Join(rows, "\n"))
}

// Hint formats a single hint like "Save ctrl+s".
func Hint(key, desc string) string {
	return hintDescStyle.Render(desc+" ") + keyCapStyle.Render(key)
}

func wrapSegments(segments []string, width int) []string {
	if len(segments) == 0 {
		return nil
	}
	if width <= 0 {
		return []string{lipgloss.JoinHorizontal(lipgloss.Top, segments...)}
	}
	var rows []string
	var current []string
	used := 0
	for _, seg := range segments {
		w := lipgloss.Width(seg)
		if used > 0 && used+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current, used = nil, 0
		}
		current = append(current, seg)
		used += w
	}
	return append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
}
