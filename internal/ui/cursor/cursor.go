// Package cursor tracks a selection and a scroll window over a list whose
// length and visible height change over time.
package cursor

// Cursor is a selected index plus the first visible row. The zero value is
// usable with no scroll margin.
type Cursor struct {
	pos    int
	offset int
	margin int // rows kept visible above/below the cursor
	length int
	height int
}

// New creates a Cursor with the given scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the selected index.
func (c Cursor) Pos() int { return c.pos }

// Offset returns the first visible index.
func (c Cursor) Offset() int { return c.offset }

// SetBounds updates the list length and visible height, clamping the
// selection into the list.
func (c *Cursor) SetBounds(length, height int) {
	c.length = max(length, 0)
	c.height = max(height, 0)
	c.Jump(c.pos)
}

// Move moves the selection by delta, clamped to the list.
func (c *Cursor) Move(delta int) {
	c.Jump(c.pos + delta)
}

// Jump selects pos, clamped to the list, and scrolls it into view.
func (c *Cursor) Jump(pos int) {
	if c.length == 0 {
		c.pos, c.offset = 0, 0
		return
	}
	c.pos = clamp(pos, 0, c.length-1)
	c.scroll()
}

// First selects the first item.
func (c *Cursor) First() { c.Jump(0) }

// Last selects the last item.
func (c *Cursor) Last() { c.Jump(c.length - 1) }

// Window returns the visible index range [start, end).
func (c Cursor) Window() (start, end int) {
	if c.length == 0 || c.height == 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+c.height, c.length)
}

func (c *Cursor) scroll() {
	if c.height == 0 {
		return
	}
	margin := min(c.margin, (c.height-1)/2)

	if c.pos < c.offset+margin {
		c.offset = c.pos - margin
	}
	if c.pos >= c.offset+c.height-margin {
		c.offset = c.pos - c.height + margin + 1
	}
	c.offset = clamp(c.offset, 0, max(c.length-c.height, 0))
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
