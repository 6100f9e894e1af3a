package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCursorClampsPageSize(t *testing.T) {
	assert.Equal(t, 1, NewCursor(0).PageSize)
	assert.Equal(t, 5, NewCursor(5).PageSize)
}

func TestCursorDownScrolls(t *testing.T) {
	c := NewCursor(3)
	c.SetCount(5)

	c.Down()
	c.Down()
	assert.Equal(t, 2, c.Index)
	assert.Equal(t, 0, c.Offset)

	c.Down()
	assert.Equal(t, 3, c.Index)
	assert.Equal(t, 1, c.Offset)

	c.Down()
	c.Down()
	assert.Equal(t, 4, c.Index)
	assert.Equal(t, 2, c.Offset)
}

func TestCursorUpScrolls(t *testing.T) {
	c := NewCursor(2)
	c.SetCount(4)
	c.Last()
	assert.Equal(t, 3, c.Index)
	assert.Equal(t, 2, c.Offset)

	c.Up()
	c.Up()
	assert.Equal(t, 1, c.Index)
	assert.Equal(t, 1, c.Offset)

	c.Up()
	c.Up()
	assert.Equal(t, 0, c.Index)
	assert.Equal(t, 0, c.Offset)
}

func TestCursorSetCountClampsSelection(t *testing.T) {
	c := NewCursor(3)
	c.SetCount(6)
	c.Last()

	c.SetCount(2)
	assert.Equal(t, 1, c.Index)
	assert.Equal(t, 0, c.Offset)

	c.SetCount(0)
	assert.Equal(t, 0, c.Index)
	start, end := c.Window()
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}

func TestCursorWindow(t *testing.T) {
	c := NewCursor(2)
	c.SetCount(5)
	c.Jump(3)
	start, end := c.Window()
	assert.Equal(t, 2, start)
	assert.Equal(t, 4, end)
}

func TestCursorJumpOutOfRange(t *testing.T) {
	c := NewCursor(10)
	c.SetCount(3)
	c.Jump(-4)
	assert.Equal(t, 0, c.Index)
	c.Jump(99)
	assert.Equal(t, 2, c.Index)
}
