package writer

import (
	"errors"
	"strings"
	"testing"

	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/grid"
	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/layout"
	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/mapper"
	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/models"
	"github.com/xuri/excelize/v2"
)

func newEncoder(t *testing.T) (*excelize.File, *Encoder, *layout.Layout) {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { f.Close() })

	l := layout.Default()
	s, err := grid.NewSheet(f, l.Sheet)
	if err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	return f, New(s, l), l
}

func cell(t *testing.T, f *excelize.File, ref string) string {
	t.Helper()
	v, err := f.GetCellValue("INPUT", ref, excelize.Options{RawCellValue: true})
	if err != nil {
		t.Fatalf("GetCellValue(%s) failed: %v", ref, err)
	}
	return v
}

func TestWriteFixedSection(t *testing.T) {
	f, enc, l := newEncoder(t)
	s, _ := l.Section(models.SectionMaterials)

	records := []models.Record{
		models.Material{ID: 1, Name: "S355", Temperature: 50, E: 200000, Sy: 312, Su: 470, Poisson: 0.3}.Record(),
		models.Material{ID: 1001, Name: "S355", Temperature: 50, E: 185000, Sy: 206, Su: 470, Poisson: 0.3}.Record(),
	}
	cur := grid.NewCursor(9)
	if err := enc.Write(cur, s, records); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if cur.Position() != 14 {
		t.Errorf("Expected cursor on row 14, got %d", cur.Position())
	}

	tests := []struct {
		ref      string
		expected string
	}{
		{"B9", "Matériaux"},
		{"B11", "ID"},
		{"C11", "Nom"},
		{"H11", "Coef de Poisson"},
		{"I11", ""},
		{"B12", "1"},
		{"C12", "S355"},
		{"E12", "200000"},
		{"H12", "0.3"},
		{"B13", "1001"},
		{"B14", ""},
	}
	for _, tt := range tests {
		if got := cell(t, f, tt.ref); got != tt.expected {
			t.Errorf("%s = %q, expected %q", tt.ref, got, tt.expected)
		}
	}

	title, _ := f.GetCellStyle("INPUT", "B9")
	header, _ := f.GetCellStyle("INPUT", "B11")
	data, _ := f.GetCellStyle("INPUT", "B12")
	if title == 0 || header == 0 || data == 0 || title == header || header == data {
		t.Errorf("Expected distinct title/header/data styles, got %d/%d/%d", title, header, data)
	}
}

func TestWriteEmptySection(t *testing.T) {
	f, enc, l := newEncoder(t)
	s, _ := l.Section(models.SectionProfiles)

	cur := grid.NewCursor(20)
	if err := enc.Write(cur, s, nil); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if cur.Position() != 23 {
		t.Errorf("Expected cursor right below the header (23), got %d", cur.Position())
	}
	if got := cell(t, f, "B22"); got != "ID" {
		t.Errorf("Expected header row on 22, got %q", got)
	}
	if got := cell(t, f, "P22"); got != "Qz [mm3]" {
		t.Errorf("Expected last header Qz [mm3], got %q", got)
	}
}

func TestWriteDerivedDefaultsAndSentinel(t *testing.T) {
	f, enc, l := newEncoder(t)
	members, _ := l.Section(models.SectionMembers)
	profiles, _ := l.Section(models.SectionProfiles)

	ky := 1.5
	cur := grid.NewCursor(1)
	member := models.Member{ID: 3, NodeIDs: []int{31, 32, 34}, Section: "HEB120", Material: "S275", Lambda: 2000, Lb: 1000, Ky: &ky}
	if err := enc.Write(cur, members, []models.Record{member.Record()}); err != nil {
		t.Fatalf("Write members failed: %v", err)
	}
	// row 4: ID, start, end, section, material, λ, Lc, ky, kz, Cmy, Cmz
	expected := []string{"3", "31", "34", "HEB120", "S275", "2000", "1000", "1.5", "2", "0.85", "0.85"}
	for i, want := range expected {
		ref, _ := excelize.CoordinatesToCellName(2+i, 4)
		if got := cell(t, f, ref); got != want {
			t.Errorf("%s = %q, expected %q", ref, got, want)
		}
	}

	cur = grid.NewCursor(10)
	profile := models.SectionProfile{ID: 1, Name: "IPE 100", H: 100, L: 55, Tw: 4.1, Tf: 5.7, A: 1030}
	if err := enc.Write(cur, profiles, []models.Record{profile.Record()}); err != nil {
		t.Fatalf("Write profiles failed: %v", err)
	}
	if got := cell(t, f, "N13"); got != "-" {
		t.Errorf("Expected sentinel in the core area cell, got %q", got)
	}
	if got := cell(t, f, "M13"); got != "0" {
		t.Errorf("Expected J written as 0, got %q", got)
	}
}

func TestWriteVariableSection(t *testing.T) {
	f, enc, l := newEncoder(t)
	s, _ := l.Section(models.SectionCombinations)

	rows := []models.Record{
		models.CombinationRow{Situation: "Situation 1", Combinations: []string{"NP", "CO3", "CO4", "CO5"}}.Record(),
		models.CombinationRow{Situation: "Situation 2", Combinations: []string{"ACC", "CO9"}}.Record(),
	}
	cur := grid.NewCursor(26)
	if err := enc.Write(cur, s, rows); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if cur.Position() != 30 {
		t.Errorf("Expected cursor on row 30, got %d", cur.Position())
	}

	tests := []struct {
		ref      string
		expected string
	}{
		{"B26", "Combinaisons analysées"},
		{"B27", ""},
		{"B28", "Situation 1"},
		{"F28", "CO5"},
		{"B29", "Situation 2"},
		{"D29", "CO9"},
		{"E29", ""},
		{"F29", ""},
	}
	for _, tt := range tests {
		if got := cell(t, f, tt.ref); got != tt.expected {
			t.Errorf("%s = %q, expected %q", tt.ref, got, tt.expected)
		}
	}

	pad, _ := f.GetCellStyle("INPUT", "F29")
	data, _ := f.GetCellStyle("INPUT", "B29")
	if pad == 0 || pad != data {
		t.Errorf("Expected padding cells styled as data, got %d vs %d", pad, data)
	}
}

func TestWriteRejectsUndecodableMarkers(t *testing.T) {
	_, enc, l := newEncoder(t)
	materials, _ := l.Section(models.SectionMaterials)
	combos, _ := l.Section(models.SectionCombinations)

	err := enc.Write(grid.NewCursor(9), materials, []models.Record{{"name": "S355"}})
	if !errors.Is(err, ErrBlankMarker) {
		t.Errorf("Expected ErrBlankMarker, got %v", err)
	}
	var rowErr *RowError
	if !errors.As(err, &rowErr) || rowErr.Section != models.SectionMaterials || rowErr.Index != 0 {
		t.Errorf("Expected a RowError for record 0, got %v", err)
	}

	err = enc.Write(grid.NewCursor(30), combos, []models.Record{{"situation": "Section", "co1": "NP"}})
	if !errors.Is(err, ErrTitleCollision) {
		t.Errorf("Expected ErrTitleCollision, got %v", err)
	}

	// Whitespace-only markers read back as blank and would end the run.
	err = enc.Write(grid.NewCursor(40), combos, []models.Record{
		{"situation": "Situation 1", "co1": "NP"},
		{"situation": " ", "co1": "ACC"},
		{"situation": "Situation 3", "co1": "CO9"},
	})
	if !errors.Is(err, ErrBlankMarker) || !errors.As(err, &rowErr) || rowErr.Index != 1 {
		t.Errorf("Expected ErrBlankMarker on record 1, got %v", err)
	}
	err = enc.Write(grid.NewCursor(50), materials, []models.Record{{"id": "  ", "name": "S355"}})
	if !errors.Is(err, ErrBlankMarker) {
		t.Errorf("Expected ErrBlankMarker for a whitespace id, got %v", err)
	}
}

func TestWriteRejectsGapsInVariableRows(t *testing.T) {
	_, enc, l := newEncoder(t)
	combos, _ := l.Section(models.SectionCombinations)

	tests := []struct {
		name   string
		labels []string
	}{
		{"empty label", []string{"NP", "", "CO4"}},
		{"whitespace label", []string{"NP", "  ", "CO4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := models.CombinationRow{Situation: "Situation 1", Combinations: tt.labels}.Record()
			err := enc.Write(grid.NewCursor(26), combos, []models.Record{rec})
			if !errors.Is(err, ErrBlankLabel) {
				t.Fatalf("Expected ErrBlankLabel, got %v", err)
			}
			if !strings.Contains(err.Error(), "CO2") {
				t.Errorf("Expected the blank column to be named, got %v", err)
			}
		})
	}

	// A gap in the field numbering is a gap too.
	err := enc.Write(grid.NewCursor(26), combos, []models.Record{{"situation": "Situation 1", "co1": "NP", "co3": "CO4"}})
	if !errors.Is(err, ErrBlankLabel) {
		t.Errorf("Expected ErrBlankLabel, got %v", err)
	}

	// Blank labels after the last one are dropped.
	f, enc, l := newEncoder(t)
	combos, _ = l.Section(models.SectionCombinations)
	cur := grid.NewCursor(26)
	rec := models.CombinationRow{Situation: "Situation 1", Combinations: []string{"NP", "CO3", ""}}.Record()
	if err := enc.Write(cur, combos, []models.Record{rec}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if got := cell(t, f, "E28"); got != "" {
		t.Errorf("Expected no trailing cell, got %q", got)
	}
	if cur.Position() != 29 {
		t.Errorf("Expected cursor on row 29, got %d", cur.Position())
	}
}

func TestWriteRejectsTextInNumberColumns(t *testing.T) {
	_, enc, l := newEncoder(t)
	materials, _ := l.Section(models.SectionMaterials)

	err := enc.Write(grid.NewCursor(9), materials, []models.Record{{"id": 1.0, "name": "S355", "E": "abc"}})
	if !errors.Is(err, mapper.ErrTypeMismatch) {
		t.Errorf("Expected a type mismatch, got %v", err)
	}
}

func TestWriteNoteAndFinish(t *testing.T) {
	f, enc, l := newEncoder(t)
	if err := enc.WriteNote(); err != nil {
		t.Fatalf("WriteNote failed: %v", err)
	}
	s, _ := l.Section(models.SectionMaterials)
	if err := enc.Write(grid.NewCursor(9), s, nil); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := enc.Finish(); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}

	if got := cell(t, f, "B2"); got != layout.DefaultNote {
		t.Errorf("Unexpected note %q", got)
	}
	h, err := f.GetRowHeight("INPUT", 2)
	if err != nil || h != 45 {
		t.Errorf("Expected note row height 45, got %v (%v)", h, err)
	}

	found := false
	for _, dn := range f.GetDefinedName() {
		if dn.Name == "_xlnm.Print_Area" {
			found = true
			if dn.RefersTo != "'INPUT'!$B$2:$P$11" {
				t.Errorf("Unexpected print area %q", dn.RefersTo)
			}
		}
	}
	if !found {
		t.Error("Expected a print area")
	}
}
