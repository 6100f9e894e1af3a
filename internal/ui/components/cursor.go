package components

// Cursor tracks a selected row and a scroll window over Count rows.
type Cursor struct {
	Index    int
	Offset   int
	PageSize int
	Count    int
}

// NewCursor creates a cursor showing pageSize rows at a time.
func NewCursor(pageSize int) *Cursor {
	return &Cursor{PageSize: max(pageSize, 1)}
}

// SetCount updates the row count, keeping the selection in range.
func (c *Cursor) SetCount(n int) {
	c.Count = max(n, 0)
	c.Jump(c.Index)
}

// Jump selects row i, clamped to the available rows.
func (c *Cursor) Jump(i int) {
	if c.Count == 0 {
		c.Index, c.Offset = 0, 0
		return
	}
	c.Index = min(max(i, 0), c.Count-1)
	c.follow()
}

// Down moves the selection one row down.
func (c *Cursor) Down() {
	if c.Index < c.Count-1 {
		c.Index++
		c.follow()
	}
}

// Up moves the selection one row up.
func (c *Cursor) Up() {
	if c.Index > 0 {
		c.Index--
		c.follow()
	}
}

// Last selects the final row.
func (c *Cursor) Last() {
	c.Jump(c.Count - 1)
}

// Window returns the half-open range of rows currently on screen.
func (c *Cursor) Window() (start, end int) {
	return c.Offset, min(c.Offset+c.PageSize, c.Count)
}

func (c *Cursor) follow() {
	if c.Index < c.Offset {
		c.Offset = c.Index
	}
	if c.Index >= c.Offset+c.PageSize {
		c.Offset = c.Index - c.PageSize + 1
	}
	if c.Offset > max(c.Count-c.PageSize, 0) {
		c.Offset = max(c.Count-c.PageSize, 0)
	}
}
