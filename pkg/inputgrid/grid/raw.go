package grid

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Raw is a read-only snapshot of a sheet's raw cell text. Rows and columns
// are 1-based; cells outside the stored range read as "".
type Raw struct {
	rows [][]string
}

// NewRaw wraps rows (0-based slices) as a snapshot.
func NewRaw(rows [][]string) *Raw {
	return &Raw{rows: rows}
}

// ReadRaw loads the raw, unformatted cell values of a sheet.
func ReadRaw(f *excelize.File, sheet string) (*Raw, error) {
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return NewRaw(rows), nil
}

// Cell returns the text at (row, col).
func (g *Raw) Cell(row, col int) string {
	if row < 1 || row > len(g.rows) {
		return ""
	}
	r := g.rows[row-1]
	if col < 1 || col > len(r) {
		return ""
	}
	return r[col-1]
}

// MaxRow returns the last row holding any stored cell.
func (g *Raw) MaxRow() int {
	return len(g.rows)
}

// RowWidth returns the number of stored cells of a row.
func (g *Raw) RowWidth(row int) int {
	if row < 1 || row > len(g.rows) {
		return 0
	}
	return len(g.rows[row-1])
}
