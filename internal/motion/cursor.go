package motion

// CursorSize is the diameter of the cursor glyph in CSS pixels.
const CursorSize = 32

// Cursor follows the pointer, offset so the glyph is centered on it.
type Cursor struct {
	pos Vec
}

// NewCursor starts off-screen until the first pointer move.
func NewCursor() *Cursor {
	return &Cursor{pos: Vec{-100, -100}}
}

func (c *Cursor) Move(p Vec) {
	c.pos = p.Sub(Vec{CursorSize / 2, CursorSize / 2})
}

func (c *Cursor) Position() Vec { return c.pos }

// Bind follows viewport-wide pointer moves.
func (c *Cursor) Bind(pointer *Signal[Vec], apply func(Vec)) func() {
	return pointer.Subscribe(func(p Vec) {
		c.Move(p)
		apply(c.pos)
	})
}
