package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestBoxWidthBounds(t *testing.T) {
	assert.Equal(t, 0, boxWidth(0))
	assert.Equal(t, 40, boxWidth(10))
	assert.Equal(t, 96, boxWidth(200))
	assert.Equal(t, 80, boxWidth(100))
}

func TestTitledBoxNarrowTerminalClampsWidth(t *testing.T) {
	out := TitledBox("Object", "line", 20)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 20)
	}
}

func TestTitledBoxIncludesTitle(t *testing.T) {
	out := TitledBox("My Title", "Content", 80)
	assert.Contains(t, out, "My Title")
	assert.Contains(t, out, "Content")
}

func TestTitledBoxTopLineMatchesBody(t *testing.T) {
	out := ActiveTitledBox("Raw JSON", "{}", 80)
	lines := strings.Split(out, "\n")
	assert.Equal(t, lipgloss.Width(lines[1]), lipgloss.Width(lines[0]))
}

func TestTitledBoxEmptyTitleFallsBack(t *testing.T) {
	out := TitledBox("", "Content", 80)
	assert.Contains(t, out, "Content")
	assert.NotContains(t, out, "[")
}

func TestErrorBoxIncludesMessage(t *testing.T) {
	out := ErrorBox("Error", "Something broke\x1b[2J", 80)
	assert.Contains(t, out, "Something broke")
	assert.NotContains(t, out, "\x1b[2J")
}

func TestClampTextWidth(t *testing.T) {
	assert.Equal(t, "abc", ClampTextWidth("abc", 5))
	assert.Equal(t, "abc…", ClampTextWidth("abcdefgh", 4))
	assert.Equal(t, "a b", ClampTextWidth("a\nb", 10))
	assert.Equal(t, "anything", ClampTextWidth("anything", 0))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab  ", PadRight("ab", 4))
	assert.Equal(t, "abcdef", PadRight("abcdef", 4))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "", truncateRunes("hello", 0))
	assert.Equal(t, "he", truncateRunes("hello", 2))
	assert.Equal(t, "你", truncateRunes("你好", 1))
}

func TestIndentPreservesLineCountAndAddsPadding(t *testing.T) {
	out := Indent("a\nb\nc", 2)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 3)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "  "))
	}
}

func TestSetPaletteSwitchesColors(t *testing.T) {
	t.Cleanup(func() { SetPalette(DarkPalette) })

	SetPalette(LightPalette)
	assert.Equal(t, LightPalette, CurrentPalette())
	assert.Contains(t, TitledBox("Light", "x", 60), "Light")

	SetPalette(DarkPalette)
	assert.Equal(t, DarkPalette, CurrentPalette())
}
