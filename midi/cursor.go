package midi

// Cursor is a forward-only reader over a track payload. It never seeks
// backward and never errors: TakeOne reports exhaustion through its second
// return and TakeN returns short when fewer bytes remain, leaving shortfall
// detection to the caller.
type Cursor struct {
	data []byte
	pos  int
}

func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// TakeOne consumes and returns the next byte, or false when exhausted.
func (c *Cursor) TakeOne() (byte, bool) {
	if c.pos >= len(c.data) {
		return 0, false
	}
	b := c.data[c.pos]
	c.pos++
	return b, true
}

// TakeN consumes up to n bytes, returning fewer only when the input runs out.
func (c *Cursor) TakeN(n int) []byte {
	if remaining := len(c.data) - c.pos; n > remaining {
		n = remaining
	}
	out := c.data[c.pos : c.pos+n]
	c.pos += n
	return out
}

// Peek returns the next byte without consuming it, or false when exhausted.
func (c *Cursor) Peek() (byte, bool) {
	if c.pos >= len(c.data) {
		return 0, false
	}
	return c.data[c.pos], true
}

// Exhausted reports whether no bytes remain.
func (c *Cursor) Exhausted() bool {
	return c.pos >= len(c.data)
}
