// SPDX-License-Identifier: MIT

package step

import "fmt"

// Cursor walks a Trace forwards and backwards. It never recomputes anything;
// seeking is O(1). A Cursor is not safe for concurrent use; the underlying
// Trace is.
type Cursor struct {
	trace *Trace
	pos   int
}

// NewCursor returns a cursor positioned on step 0.
func NewCursor(t *Trace) *Cursor { return &Cursor{trace: t} }

// Index returns the current position.
func (c *Cursor) Index() int { return c.pos }

// Current returns a copy of the step under the cursor.
func (c *Cursor) Current() (Step, error) { return c.trace.At(c.pos) }

// Next advances by one step. It reports false (and stays put) at the end.
func (c *Cursor) Next() bool {
	if c.pos+1 >= c.trace.Len() {
		return false
	}
	c.pos++

	return true
}

// Prev moves back one step. It reports false (and stays put) at the start.
func (c *Cursor) Prev() bool {
	if c.pos == 0 {
		return false
	}
	c.pos--

	return true
}

// Seek jumps to step i.
// Errors: ErrStepOutOfRange (position unchanged).
func (c *Cursor) Seek(i int) error {
	if i < 0 || i >= c.trace.Len() {
		return fmt.Errorf("Cursor.Seek(%d) of %d: %w", i, c.trace.Len(), ErrStepOutOfRange)
	}
	c.pos = i

	return nil
}

// Rewind returns to step 0.
func (c *Cursor) Rewind() { c.pos = 0 }

// End jumps to the terminal step.
func (c *Cursor) End() {
	if n := c.trace.Len(); n > 0 {
		c.pos = n - 1
	}
}
