package parser

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/layout"
	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/mapper"
	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/models"
)

func TestDecodeRows(t *testing.T) {
	raw := rawFrom(t, map[string]string{
		"B9":  "Section",
		"B11": "ID", "C11": "Nom", "D11": "tw [mm]", "E11": "Ac [mm²]", "F11": "Remarque",
		"B12": "1", "C12": "IPE 100", "D12": "4.1", "E12": "-", "F12": "laminé",
		"B13": "2", "C13": "HEB 120", "D13": "?", "E13": "1700",
		"B14": "3",
	})
	l := layout.Default()
	s := sectionOf(t, l, "sections")
	b, _ := NewScanner(raw, l).Locate(s)

	records, diags := NewDecoder(b, mapper.New(s), l.MarkerColumn).Decode()
	if len(diags) != 0 {
		t.Fatalf("Unexpected diagnostics %v", diags)
	}
	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}

	first := records[0]
	if first[models.FieldID] != 1.0 || first[models.FieldName] != "IPE 100" || first[models.FieldTw] != 4.1 {
		t.Errorf("Unexpected first record %v", first)
	}
	if v, ok := first[models.FieldAm]; !ok || v != nil {
		t.Errorf("Expected the sentinel to decode to nil, got %v (%v)", v, ok)
	}
	if first["Remarque"] != "laminé" {
		t.Errorf("Expected the unknown column to pass through, got %v", first["Remarque"])
	}
	// tw is tolerant: unparsable text reads as 0.
	if records[1][models.FieldTw] != 0.0 {
		t.Errorf("Expected tolerant default 0, got %v", records[1][models.FieldTw])
	}
	// Column-count drift: missing trailing cells are nil.
	for _, f := range []string{models.FieldName, models.FieldTw, models.FieldAm, "Remarque"} {
		if v, ok := records[2][f]; !ok || v != nil {
			t.Errorf("Expected %s to decode to nil, got %v (%v)", f, v, ok)
		}
	}
}

func TestDecodeCollectsMismatches(t *testing.T) {
	raw := rawFrom(t, map[string]string{
		"B9":  "Matériaux",
		"B11": "ID", "C11": "Nom", "D11": "E [MPa]",
		"B12": "1", "C12": "S355", "D12": "200000",
		"B13": "2", "C13": "S235", "D13": "two hundred",
		"B14": "3", "C14": "S460", "D14": "210000",
	})
	l := layout.Default()
	s := sectionOf(t, l, "materials")
	b, _ := NewScanner(raw, l).Locate(s)

	records, diags := NewDecoder(b, mapper.New(s), l.MarkerColumn).Decode()
	if len(records) != 2 || records[1][models.FieldID] != 3.0 {
		t.Errorf("Expected rows 1 and 3 to decode, got %v", records)
	}
	if len(diags) != 1 {
		t.Fatalf("Expected 1 diagnostic, got %d", len(diags))
	}
	d := diags[0]
	if d.Section != "materials" || d.Row != 13 {
		t.Errorf("Unexpected diagnostic %+v", d)
	}
	var mismatch *mapper.TypeMismatchError
	if !errors.As(d, &mismatch) {
		t.Fatalf("Expected a TypeMismatchError, got %v", d.Err)
	}
	if mismatch.Row != 13 || mismatch.Column != 4 || mismatch.Label != "E [MPa]" {
		t.Errorf("Unexpected mismatch position %+v", mismatch)
	}

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"row":13`) || !strings.Contains(string(data), "two hundred") {
		t.Errorf("Unexpected diagnostic JSON %s", data)
	}
}

func TestRowsIsRestartable(t *testing.T) {
	raw := rawFrom(t, map[string]string{
		"B26": "Combinaisons analysées",
		"B28": "Situation 1", "C28": "NP",
		"B29": "Situation 2", "C29": "ACC", "D29": "CO9",
	})
	l := layout.Default()
	s := sectionOf(t, l, "combinations")
	b, _ := NewScanner(raw, l).Locate(s)
	dec := NewDecoder(b, mapper.New(s), l.MarkerColumn)

	for pass := 0; pass < 2; pass++ {
		n := 0
		for rec, err := range dec.Rows() {
			if err != nil {
				t.Fatalf("Unexpected error %v", err)
			}
			n++
			if n == 1 {
				if rec["situation"] != "Situation 1" || rec["co1"] != "NP" || rec["co2"] != nil {
					t.Errorf("Unexpected first row %v", rec)
				}
			}
		}
		if n != 2 {
			t.Errorf("pass %d: expected 2 rows, got %d", pass, n)
		}
	}

	// Stopping early is honored.
	n := 0
	for range dec.Rows() {
		n++
		break
	}
	if n != 1 {
		t.Errorf("Expected a single iteration, got %d", n)
	}
}
