package parser

import (
	"fmt"

	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/grid"
	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/layout"
	"github.com/xuri/excelize/v2"
)

// BlockRange summarizes where a section was found.
type BlockRange struct {
	Section string `json:"section"`
	Title   string `json:"title"`
	Found   bool   `json:"found"`
	// Range covers the title row through the last data row (e.g. "B9:H14").
	Range string `json:"range,omitempty"`
	Rows  int    `json:"rows"`
	Width int    `json:"width"`
}

// Inventory locates every section of l in raw and reports its cell range.
func Inventory(raw *grid.Raw, l *layout.Layout) ([]BlockRange, error) {
	sc := NewScanner(raw, l)
	result := make([]BlockRange, 0, len(l.Sections))
	for i := range l.Sections {
		s := &l.Sections[i]
		br := BlockRange{Section: s.Key, Title: s.Title}
		b, ok := sc.Locate(s)
		if ok {
			br.Found = true
			br.Rows = len(b.Rows)
			br.Width = b.Width()
			bottom := max(b.LastRow(), b.TitleRow+s.HeaderOffset, b.TitleRow)
			rng, err := rangeRef(l.MarkerColumn, b.TitleRow, l.MarkerColumn+max(b.Width(), 1)-1, bottom)
			if err != nil {
				return nil, err
			}
			br.Range = rng
		}
		result = append(result, br)
	}
	return result, nil
}

// DataBounds returns the range covering every non-empty cell of raw, or ""
// for an empty sheet.
func DataBounds(raw *grid.Raw) (string, error) {
	minRow, maxRow, minCol, maxCol := findDataBounds(raw)
	if minRow < 0 {
		return "", nil
	}
	return rangeRef(minCol, minRow, maxCol, maxRow)
}

// findDataBounds finds the 1-based bounding box of non-empty cells.
func findDataBounds(raw *grid.Raw) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for row := 1; row <= raw.MaxRow(); row++ {
		for col := 1; col <= raw.RowWidth(row); col++ {
			if blank(raw.Cell(row, col)) {
				continue
			}
			if minRow < 0 {
				minRow = row
			}
			maxRow = row
			if minCol < 0 || col < minCol {
				minCol = col
			}
			if col > maxCol {
				maxCol = col
			}
		}
	}
	return
}

func rangeRef(c1, r1, c2, r2 int) (string, error) {
	start, err := excelize.CoordinatesToCellName(c1, r1)
	if err != nil {
		return "", err
	}
	end, err := excelize.CoordinatesToCellName(c2, r2)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s", start, end), nil
}
