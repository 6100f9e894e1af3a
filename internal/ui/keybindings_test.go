package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestIsQuit(t *testing.T) {
	assert.True(t, isQuit(tea.KeyMsg{Type: tea.KeyCtrlC}))
	assert.True(t, isQuit(runeKey('q')))
	assert.False(t, isQuit(runeKey('a')))
}

func TestIsEnter(t *testing.T) {
	assert.True(t, isEnter(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.False(t, isEnter(tea.KeyMsg{Type: tea.KeySpace}))
}

func TestIsSpace(t *testing.T) {
	assert.True(t, isSpace(tea.KeyMsg{Type: tea.KeySpace}))
	assert.False(t, isSpace(tea.KeyMsg{Type: tea.KeyEnter}))
}

func TestIsBack(t *testing.T) {
	assert.True(t, isBack(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.False(t, isBack(tea.KeyMsg{Type: tea.KeyEnter}))
}

func TestIsDownHonorsVimKeys(t *testing.T) {
	assert.True(t, isDown(tea.KeyMsg{Type: tea.KeyDown}, false))
	assert.False(t, isDown(tea.KeyMsg{Type: tea.KeyUp}, true))
	assert.False(t, isDown(runeKey('j'), false))
	assert.True(t, isDown(runeKey('j'), true))
}

func TestIsUpHonorsVimKeys(t *testing.T) {
	assert.True(t, isUp(tea.KeyMsg{Type: tea.KeyUp}, false))
	assert.False(t, isUp(tea.KeyMsg{Type: tea.KeyDown}, true))
	assert.False(t, isUp(runeKey('k'), false))
	assert.True(t, isUp(runeKey('k'), true))
}

func TestIsSaveAndDelete(t *testing.T) {
	assert.True(t, isSave(tea.KeyMsg{Type: tea.KeyCtrlS}))
	assert.True(t, isDelete(runeKey('d')))
	assert.True(t, isDelete(runeKey('x')))
	assert.True(t, isDelete(tea.KeyMsg{Type: tea.KeyDelete}))
	assert.False(t, isDelete(runeKey('a')))
}
