// Package grid provides the single-sheet grid the codec writes to and
// scans: a write cursor, an excelize-backed writable sheet, and a
// read-only snapshot of raw cell text.
package grid

import "fmt"

// Cursor tracks the next writable 1-based row.
type Cursor struct {
	row int
}

// NewCursor returns a cursor positioned at row.
func NewCursor(row int) *Cursor {
	return &Cursor{row: row}
}

// Advance moves the cursor down by n rows.
func (c *Cursor) Advance(n int) {
	if n < 0 {
		panic(fmt.Sprintf("grid: negative cursor advance %d", n))
	}
	c.row += n
}

// Position returns the current row.
func (c *Cursor) Position() int {
	return c.row
}
