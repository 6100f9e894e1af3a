package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmDialogIncludesTitleMessageAndHints(t *testing.T) {
	out := ConfirmDialog("Unsaved changes", "Quit without saving?")
	clean := SanitizeText(out)

	assert.Contains(t, clean, "Unsaved changes")
	assert.Contains(t, clean, "Quit without saving?")
	assert.Contains(t, clean, "y: confirm | n: cancel")
}
