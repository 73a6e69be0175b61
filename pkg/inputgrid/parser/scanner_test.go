package parser

import (
	"reflect"
	"testing"

	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/grid"
	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/layout"
	"github.com/xuri/excelize/v2"
)

// rawFrom builds a raw grid from A1-style references.
func rawFrom(t *testing.T, cells map[string]string) *grid.Raw {
	t.Helper()
	var rows [][]string
	for ref, v := range cells {
		col, row, err := excelize.CellNameToCoordinates(ref)
		if err != nil {
			t.Fatalf("bad reference %q: %v", ref, err)
		}
		for len(rows) < row {
			rows = append(rows, nil)
		}
		for len(rows[row-1]) < col {
			rows[row-1] = append(rows[row-1], "")
		}
		rows[row-1][col-1] = v
	}
	return grid.NewRaw(rows)
}

func sectionOf(t *testing.T, l *layout.Layout, key string) *layout.Section {
	t.Helper()
	s, ok := l.Section(key)
	if !ok {
		t.Fatalf("section %q missing", key)
	}
	return s
}

func TestLocateFixedBlock(t *testing.T) {
	raw := rawFrom(t, map[string]string{
		"B9":  "Matériaux",
		"B11": "ID", "C11": "Nom", "D11": "E [MPa]",
		"B12": "1", "C12": "S355", "D12": "200000",
		"B13": "2", "C13": "S235",
		"B17": "Membres",
	})
	l := layout.Default()
	b, ok := NewScanner(raw, l).Locate(sectionOf(t, l, "materials"))
	if !ok {
		t.Fatal("Expected the block to be found")
	}
	if b.TitleRow != 9 || b.HeaderRow != 11 || b.FirstRow != 12 || b.LastRow() != 13 {
		t.Errorf("Unexpected rows: title %d header %d first %d last %d", b.TitleRow, b.HeaderRow, b.FirstRow, b.LastRow())
	}
	if !reflect.DeepEqual(b.Header, []string{"ID", "Nom", "E [MPa]"}) {
		t.Errorf("Unexpected header %v", b.Header)
	}
	// Short rows are padded to the header width.
	if !reflect.DeepEqual(b.Rows[1], []string{"2", "S235", ""}) {
		t.Errorf("Unexpected second row %v", b.Rows[1])
	}
}

func TestLocateNotFound(t *testing.T) {
	raw := rawFrom(t, map[string]string{"B9": "Matériaux ", "B10": "matériaux"})
	l := layout.Default()
	if _, ok := NewScanner(raw, l).Locate(sectionOf(t, l, "materials")); ok {
		t.Error("Expected no match for titles differing in case or whitespace")
	}
}

func TestFirstTitleOccurrenceWins(t *testing.T) {
	raw := rawFrom(t, map[string]string{
		"B3": "Section", "B5": "ID", "B6": "7",
		"B20": "Section", "B22": "ID", "B23": "8", "B24": "9",
	})
	l := layout.Default()
	sc := NewScanner(raw, l)
	row, ok := sc.FindTitle("Section")
	if !ok || row != 3 {
		t.Fatalf("Expected the first title on row 3, got %d (%v)", row, ok)
	}
	b, _ := sc.Locate(sectionOf(t, l, "sections"))
	if len(b.Rows) != 1 || b.Rows[0][0] != "7" {
		t.Errorf("Expected the block under the first title, got %v", b.Rows)
	}
}

func TestScanStopsAtBlankMarker(t *testing.T) {
	raw := rawFrom(t, map[string]string{
		"B9":  "Matériaux",
		"B11": "ID", "C11": "Nom",
		"B12": "1", "C12": "S355",
		// Row 13 has data to the right but a blank marker cell.
		"C13": "orphan",
		"B14": "3", "C14": "S460",
	})
	l := layout.Default()
	b, _ := NewScanner(raw, l).Locate(sectionOf(t, l, "materials"))
	if len(b.Rows) != 1 {
		t.Errorf("Expected the run to stop at the blank marker, got %d rows", len(b.Rows))
	}
}

func TestScanStopsAtNextTitle(t *testing.T) {
	raw := rawFrom(t, map[string]string{
		"B9":  "Membres",
		"B11": "ID",
		"B12": "1",
		"B13": "Combinaisons analysées",
		"B15": "Situation 1",
	})
	l := layout.Default()
	b, _ := NewScanner(raw, l).Locate(sectionOf(t, l, "members"))
	if len(b.Rows) != 1 {
		t.Errorf("Expected the run to stop at the next title, got %d rows", len(b.Rows))
	}

	l.Sections[1].Stop = layout.StopBlank
	b, _ = NewScanner(raw, l).Locate(sectionOf(t, l, "members"))
	if len(b.Rows) != 2 {
		t.Errorf("Expected the blank-only rule to read through the title, got %d rows", len(b.Rows))
	}
}

func TestLocateVariableBlock(t *testing.T) {
	raw := rawFrom(t, map[string]string{
		"B26": "Combinaisons analysées",
		"B28": "Situation 1", "C28": "NP", "D28": "CO3", "E28": "CO4", "F28": "CO5",
		"B29": "Situation 2", "C29": "ACC", "D29": "CO9",
		"B30": "Section",
	})
	l := layout.Default()
	b, ok := NewScanner(raw, l).Locate(sectionOf(t, l, "combinations"))
	if !ok {
		t.Fatal("Expected the block to be found")
	}
	if b.HeaderRow != 0 || b.FirstRow != 28 {
		t.Errorf("Unexpected header/first rows %d/%d", b.HeaderRow, b.FirstRow)
	}
	if !reflect.DeepEqual(b.Header, []string{"Situation", "CO1", "CO2", "CO3", "CO4"}) {
		t.Errorf("Unexpected synthesized header %v", b.Header)
	}
	if !reflect.DeepEqual(b.Widths, []int{5, 3}) {
		t.Errorf("Unexpected widths %v", b.Widths)
	}
	if !reflect.DeepEqual(b.Rows[1], []string{"Situation 2", "ACC", "CO9", "", ""}) {
		t.Errorf("Unexpected padded row %v", b.Rows[1])
	}
}

func TestLocateEmptyBlocks(t *testing.T) {
	raw := rawFrom(t, map[string]string{
		"B9": "Matériaux", "B11": "ID", "C11": "Nom",
		"B15": "Combinaisons analysées",
	})
	l := layout.Default()
	sc := NewScanner(raw, l)

	b, _ := sc.Locate(sectionOf(t, l, "materials"))
	if len(b.Rows) != 0 || b.LastRow() != 11 {
		t.Errorf("Expected no rows, got %d (last %d)", len(b.Rows), b.LastRow())
	}
	v, _ := sc.Locate(sectionOf(t, l, "combinations"))
	if len(v.Rows) != 0 || v.Width() != 0 {
		t.Errorf("Expected an empty variable block, got %d rows width %d", len(v.Rows), v.Width())
	}
}
