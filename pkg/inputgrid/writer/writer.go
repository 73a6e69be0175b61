// Package writer lays titled record blocks out on a grid sheet.
package writer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/grid"
	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/layout"
	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/mapper"
	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/models"
)

var (
	// ErrBlankMarker is returned for a record whose marker-column value is
	// blank; the scanner would end the data run on it.
	ErrBlankMarker = errors.New("blank marker cell")
	// ErrTitleCollision is returned for a record whose marker-column value
	// equals a section title; the scanner would take it for a title.
	ErrTitleCollision = errors.New("marker cell equals a section title")
	// ErrBlankLabel is returned for a variable row with a blank cell before
	// its last label; decoding would end the row there.
	ErrBlankLabel = errors.New("blank label before the end of the row")
)

// RowError locates a record the encoder refused.
type RowError struct {
	Section string
	Index   int
	Err     error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("section %q record %d: %v", e.Section, e.Index, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Encoder writes the sections of one layout into a sheet.
type Encoder struct {
	sheet  *grid.Sheet
	layout *layout.Layout
	titles map[string]bool
}

// New returns an encoder for sheet laid out by l.
func New(sheet *grid.Sheet, l *layout.Layout) *Encoder {
	titles := make(map[string]bool, len(l.Sections))
	for _, t := range l.Titles() {
		titles[t] = true
	}
	return &Encoder{sheet: sheet, layout: l, titles: titles}
}

// WriteNote writes the instruction note and fixes the column widths.
func (e *Encoder) WriteNote() error {
	col := e.layout.MarkerColumn
	if n := e.layout.Note; n != nil {
		if err := e.sheet.Set(n.Row, col, n.Text, grid.StyleNote); err != nil {
			return err
		}
		if n.Height > 0 {
			if err := e.sheet.SetRowHeight(n.Row, n.Height); err != nil {
				return err
			}
		}
	}
	if e.layout.ColumnWidth > 0 {
		return e.sheet.SetColumnWidths(col, e.layout.WidthSpan, e.layout.ColumnWidth)
	}
	return nil
}

// Write lays out one section at the cursor: title, header row (fixed
// sections), then one row per record. The cursor is left on the row right
// after the last data row, or right below the header when records is empty.
func (e *Encoder) Write(cur *grid.Cursor, s *layout.Section, records []models.Record) error {
	m := mapper.New(s)
	col := e.layout.MarkerColumn
	titleRow := cur.Position()

	if err := e.sheet.Set(titleRow, col, s.Title, grid.StyleTitle); err != nil {
		return err
	}

	if s.Variable {
		cur.Advance(s.DataOffset)
		return e.writeVariable(cur, m, records)
	}

	cur.Advance(s.HeaderOffset)
	for i, label := range m.Header(0) {
		if err := e.sheet.Set(cur.Position(), col+i, label, grid.StyleHeader); err != nil {
			return err
		}
	}
	cur.Advance(s.DataOffset - s.HeaderOffset)

	for idx, rec := range records {
		values, err := e.rowValues(m, rec)
		if err != nil {
			return &RowError{Section: s.Key, Index: idx, Err: err}
		}
		if err := e.writeRow(cur.Position(), values, len(values)); err != nil {
			return err
		}
		cur.Advance(1)
	}
	return nil
}

func (e *Encoder) rowValues(m *mapper.Mapper, rec models.Record) ([]any, error) {
	cols := m.Columns()
	values := make([]any, len(cols))
	for i, c := range cols {
		v, present := rec[c.Field]
		if !present && c.Default != nil {
			v = *c.Default
		}
		out, err := mapper.CoerceOut(c, v)
		if err != nil {
			return nil, err
		}
		values[i] = out
	}
	if err := e.checkMarker(values[0]); err != nil {
		return nil, err
	}
	return values, nil
}

// writeVariable writes rows of uneven width. Rows shorter than the widest
// one are padded with blank styled cells.
func (e *Encoder) writeVariable(cur *grid.Cursor, m *mapper.Mapper, records []models.Record) error {
	rows := make([][]any, len(records))
	width := 0
	for idx, rec := range records {
		row, err := e.variableRow(m, rec)
		if err != nil {
			return &RowError{Section: m.Section(), Index: idx, Err: err}
		}
		rows[idx] = row
		width = max(width, len(row))
	}
	for _, row := range rows {
		if err := e.writeRow(cur.Position(), row, width); err != nil {
			return err
		}
		cur.Advance(1)
	}
	return nil
}

func (e *Encoder) variableRow(m *mapper.Mapper, rec models.Record) ([]any, error) {
	last := 0
	for field, v := range rec {
		if i, ok := m.TrailPosition(field); ok && !blank(v) {
			last = max(last, i)
		}
	}
	row := make([]any, 0, last+1)
	for i := 0; i <= last; i++ {
		c := layout.Column{Field: m.VariableField(i), Kind: layout.KindText}
		v, err := mapper.CoerceOut(c, rec[c.Field])
		if err != nil {
			return nil, err
		}
		if i == 0 {
			if err := e.checkMarker(v); err != nil {
				return nil, err
			}
		} else if blank(v) {
			return nil, fmt.Errorf("%w: %s", ErrBlankLabel, m.ToDisplay(c.Field))
		}
		row = append(row, v)
	}
	return row, nil
}

func (e *Encoder) checkMarker(v any) error {
	if blank(v) {
		return ErrBlankMarker
	}
	if s, ok := v.(string); ok && e.titles[s] {
		return fmt.Errorf("%w: %q", ErrTitleCollision, s)
	}
	return nil
}

// blank reports whether v would read back as an empty cell.
func blank(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}

func (e *Encoder) writeRow(row int, values []any, width int) error {
	col := e.layout.MarkerColumn
	for i := 0; i < width; i++ {
		var v any
		if i < len(values) {
			v = values[i]
		}
		if err := e.sheet.Set(row, col+i, v, grid.StyleData); err != nil {
			return err
		}
	}
	return nil
}

// Finish defines the print area over everything written so far.
func (e *Encoder) Finish() error {
	maxRow, maxCol := e.sheet.Extent()
	if maxRow == 0 {
		return nil
	}
	top := e.layout.StartRow
	if n := e.layout.Note; n != nil {
		top = n.Row
	}
	right := max(maxCol, e.layout.MarkerColumn+e.layout.WidthSpan-1)
	return e.sheet.SetPrintArea(top, e.layout.MarkerColumn, maxRow, right)
}
