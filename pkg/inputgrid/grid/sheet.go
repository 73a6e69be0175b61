package grid

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet is a writable grid bound to one worksheet of an excelize file.
// Style IDs are created on first use and cached.
type Sheet struct {
	f      *excelize.File
	name   string
	styles map[StyleHint]int
	maxRow int
	maxCol int
}

// NewSheet binds a sheet of f, creating it when missing. When the workbook
// only holds the default empty sheet, that sheet is renamed instead.
func NewSheet(f *excelize.File, name string) (*Sheet, error) {
	idx, err := f.GetSheetIndex(name)
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		list := f.GetSheetList()
		if len(list) == 1 && list[0] == "Sheet1" && isEmptySheet(f, list[0]) {
			if err := f.SetSheetName(list[0], name); err != nil {
				return nil, err
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
	}
	idx, err = f.GetSheetIndex(name)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	return &Sheet{f: f, name: name, styles: make(map[StyleHint]int)}, nil
}

func isEmptySheet(f *excelize.File, name string) bool {
	rows, err := f.GetRows(name)
	return err == nil && len(rows) == 0
}

// Name returns the worksheet name.
func (s *Sheet) Name() string {
	return s.name
}

// File returns the underlying workbook.
func (s *Sheet) File() *excelize.File {
	return s.f
}

// Set writes value at (row, col), both 1-based, and applies the style hint.
// A nil value leaves the cell blank but still styled.
func (s *Sheet) Set(row, col int, value any, hint StyleHint) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if value != nil {
		if err := s.f.SetCellValue(s.name, cell, value); err != nil {
			return fmt.Errorf("set %s: %w", cell, err)
		}
	}
	if row > s.maxRow {
		s.maxRow = row
	}
	if col > s.maxCol {
		s.maxCol = col
	}
	if hint == StyleNone {
		return nil
	}
	id, err := s.style(hint)
	if err != nil {
		return err
	}
	if err := s.f.SetCellStyle(s.name, cell, cell, id); err != nil {
		return fmt.Errorf("style %s as %s: %w", cell, hint, err)
	}
	return nil
}

func (s *Sheet) style(hint StyleHint) (int, error) {
	if id, ok := s.styles[hint]; ok {
		return id, nil
	}
	id, err := s.f.NewStyle(styleDefinition(hint))
	if err != nil {
		return 0, fmt.Errorf("create %s style: %w", hint, err)
	}
	s.styles[hint] = id
	return id, nil
}

// SetRowHeight sets the height of a 1-based row.
func (s *Sheet) SetRowHeight(row int, height float64) error {
	return s.f.SetRowHeight(s.name, row, height)
}

// SetColumnWidths applies width to span columns starting at the 1-based col.
func (s *Sheet) SetColumnWidths(col, span int, width float64) error {
	if span < 1 {
		return nil
	}
	first, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return err
	}
	last, err := excelize.ColumnNumberToName(col + span - 1)
	if err != nil {
		return err
	}
	return s.f.SetColWidth(s.name, first, last, width)
}

// SetPrintArea defines the sheet print area over the given 1-based bounds.
func (s *Sheet) SetPrintArea(r1, c1, r2, c2 int) error {
	start, err := excelize.CoordinatesToCellName(c1, r1, true)
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(c2, r2, true)
	if err != nil {
		return err
	}
	return s.f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: fmt.Sprintf("'%s'!%s:%s", s.name, start, end),
		Scope:    s.name,
	})
}

// Extent returns the largest row and column written through Set.
func (s *Sheet) Extent() (maxRow, maxCol int) {
	return s.maxRow, s.maxCol
}
