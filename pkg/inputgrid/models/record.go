// Package models defines the records carried through the input grid.
package models

// Record is one row of a section: field identifier to scalar value.
// Values are float64, string, or nil for an absent/blank cell.
type Record map[string]any

// Number returns the numeric value of a field.
// The second result is false when the field is absent or not a number.
func (r Record) Number(field string) (float64, bool) {
	switch v := r[field].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	}
	return 0, false
}

// Text returns the string value of a field, or "" when absent or not text.
func (r Record) Text(field string) string {
	s, _ := r[field].(string)
	return s
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// RecordSet maps a section key (see the Section* constants) to its rows in
// sheet order.
type RecordSet map[string][]Record

// Section keys of the default layout.
const (
	SectionMaterials    = "materials"
	SectionMembers      = "members"
	SectionCombinations = "combinations"
	SectionProfiles     = "sections"
)
