package models

import "strconv"

// CombinationRow is one analyzed situation and its load-combination labels.
type CombinationRow struct {
	// Situation is the leading label (e.g. "Situation 1").
	Situation string `json:"situation"`
	// Combinations lists the combination labels in column order.
	Combinations []string `json:"combinations"`
}

// CombinationField returns the field identifier of the i-th (1-based)
// trailing combination column.
func CombinationField(i int) string {
	return "co" + strconv.Itoa(i)
}

// Width returns the number of cells the row occupies.
func (c CombinationRow) Width() int {
	return 1 + len(c.Combinations)
}

// Record converts the row to its grid record.
func (c CombinationRow) Record() Record {
	r := Record{FieldSituation: c.Situation}
	for i, label := range c.Combinations {
		r[CombinationField(i+1)] = label
	}
	return r
}

// CombinationFromRecord rebuilds a row from a decoded record. Trailing
// combination fields are read until the first absent one.
func CombinationFromRecord(r Record) CombinationRow {
	c := CombinationRow{Situation: textOrNumber(r[FieldSituation])}
	for i := 1; ; i++ {
		v, ok := r[CombinationField(i)]
		if !ok || v == nil {
			break
		}
		c.Combinations = append(c.Combinations, textOrNumber(v))
	}
	return c
}

// DefaultCombinations returns the situations written when none are supplied.
func DefaultCombinations() []CombinationRow {
	return []CombinationRow{
		{Situation: "Situation 1", Combinations: []string{"NP", "CO3", "CO4", "CO5"}},
		{Situation: "Situation 2", Combinations: []string{"ACC", "CO9", "CO10", "CO11"}},
	}
}

func textOrNumber(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return ""
}
