// Package parser locates section blocks in a raw grid and decodes their
// rows back into records.
package parser

import (
	"strings"

	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/grid"
	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/layout"
	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/mapper"
)

// Block is the view of one section computed over raw cell text. It is never
// stored in the grid.
type Block struct {
	Section  string
	Title    string
	TitleRow int
	// HeaderRow is 0 for variable blocks.
	HeaderRow int
	// Header holds the labels read from the header row, or the synthesized
	// header of a variable block.
	Header []string
	// FirstRow is the first data row; the run spans len(Rows) rows from it.
	FirstRow int
	// Rows holds the raw cells of each data row, len(Header) wide.
	Rows [][]string
	// Widths holds the effective width of each row of a variable block.
	Widths []int
}

// LastRow returns the last data row, or FirstRow-1 when the run is empty.
func (b *Block) LastRow() int {
	return b.FirstRow + len(b.Rows) - 1
}

// Width returns the header width.
func (b *Block) Width() int {
	return len(b.Header)
}

// Scanner locates the sections of one layout.
type Scanner struct {
	raw    *grid.Raw
	layout *layout.Layout
	titles map[string]bool
}

// NewScanner returns a scanner over raw for layout l.
func NewScanner(raw *grid.Raw, l *layout.Layout) *Scanner {
	titles := make(map[string]bool, len(l.Sections))
	for _, t := range l.Titles() {
		titles[t] = true
	}
	return &Scanner{raw: raw, layout: l, titles: titles}
}

// FindTitle returns the first row whose marker cell equals title exactly.
// Matching is case-sensitive with no trimming; when a title appears more
// than once the topmost occurrence wins.
func (sc *Scanner) FindTitle(title string) (int, bool) {
	col := sc.layout.MarkerColumn
	for row := 1; row <= sc.raw.MaxRow(); row++ {
		if sc.raw.Cell(row, col) == title {
			return row, true
		}
	}
	return 0, false
}

// Locate finds the block of section s. The second result is false when the
// title is absent; the caller decides whether that is fatal.
func (sc *Scanner) Locate(s *layout.Section) (*Block, bool) {
	titleRow, ok := sc.FindTitle(s.Title)
	if !ok {
		return nil, false
	}
	if s.Variable {
		return sc.locateVariable(s, titleRow), true
	}

	col := sc.layout.MarkerColumn
	b := &Block{
		Section:   s.Key,
		Title:     s.Title,
		TitleRow:  titleRow,
		HeaderRow: titleRow + s.HeaderOffset,
		FirstRow:  titleRow + s.DataOffset,
	}
	for c := col; !blank(sc.raw.Cell(b.HeaderRow, c)); c++ {
		b.Header = append(b.Header, sc.raw.Cell(b.HeaderRow, c))
	}
	for row := b.FirstRow; !sc.ends(s, row); row++ {
		cells := make([]string, len(b.Header))
		for i := range cells {
			cells[i] = sc.raw.Cell(row, col+i)
		}
		b.Rows = append(b.Rows, cells)
	}
	return b, true
}

// locateVariable reads a headerless block row by row. Each row's width is
// the run of non-empty cells starting at the marker column; the header is
// synthesized from the widest row.
func (sc *Scanner) locateVariable(s *layout.Section, titleRow int) *Block {
	col := sc.layout.MarkerColumn
	b := &Block{
		Section:  s.Key,
		Title:    s.Title,
		TitleRow: titleRow,
		FirstRow: titleRow + s.DataOffset,
	}
	width := 0
	for row := b.FirstRow; !sc.ends(s, row); row++ {
		var cells []string
		for c := col; !blank(sc.raw.Cell(row, c)); c++ {
			cells = append(cells, sc.raw.Cell(row, c))
		}
		b.Rows = append(b.Rows, cells)
		b.Widths = append(b.Widths, len(cells))
		width = max(width, len(cells))
	}
	for i, cells := range b.Rows {
		padded := make([]string, width)
		copy(padded, cells)
		b.Rows[i] = padded
	}
	b.Header = mapper.New(s).Header(width)
	return b
}

// ends reports whether row terminates the data run of s.
func (sc *Scanner) ends(s *layout.Section, row int) bool {
	marker := sc.raw.Cell(row, sc.layout.MarkerColumn)
	if blank(marker) {
		return true
	}
	return s.Stop == layout.StopBlankOrTitle && sc.titles[marker]
}

func blank(cell string) bool {
	return strings.TrimSpace(cell) == ""
}
