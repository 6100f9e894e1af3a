package components

import "github.com/charmbracelet/lipgloss"

var dialogStyle lipgloss.Style

// ConfirmDialog renders a yes/no confirmation.
func ConfirmDialog(title, message string) string {
	body := boxHeaderStyle.Render(title) + "\n\n" +
		mutedStyle.Render(message) + "\n" +
		mutedStyle.Render("y: confirm | n: cancel")
	return dialogStyle.Render(body)
}
