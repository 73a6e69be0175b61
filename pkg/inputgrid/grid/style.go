package grid

import "github.com/xuri/excelize/v2"

// StyleHint names the visual role of a cell.
type StyleHint int

const (
	// StyleNone leaves the cell unstyled.
	StyleNone StyleHint = iota
	// StyleTitle is bold, size 12.
	StyleTitle
	// StyleHeader is bold, centered and bordered.
	StyleHeader
	// StyleData is centered and bordered.
	StyleData
	// StyleNote is wrapped and top-aligned.
	StyleNote
)

func (h StyleHint) String() string {
	switch h {
	case StyleTitle:
		return "title"
	case StyleHeader:
		return "header"
	case StyleData:
		return "data"
	case StyleNote:
		return "note"
	}
	return "none"
}

func thinBorders() []excelize.Border {
	sides := []string{"left", "right", "top", "bottom"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "000000", Style: 1}
	}
	return borders
}

func styleDefinition(h StyleHint) *excelize.Style {
	centered := &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	switch h {
	case StyleTitle:
		return &excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}}
	case StyleHeader:
		return &excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Alignment: centered,
			Border:    thinBorders(),
		}
	case StyleData:
		return &excelize.Style{Alignment: centered, Border: thinBorders()}
	case StyleNote:
		return &excelize.Style{Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"}}
	}
	return nil
}
