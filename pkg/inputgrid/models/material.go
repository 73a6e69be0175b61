package models

// Material represents a material grade at a given temperature.
type Material struct {
	// ID is the material key (row order is the persisted ordering).
	ID int `json:"id"`
	// Name is the grade name (e.g. S355).
	Name string `json:"name"`
	// Temperature is the design temperature in °C.
	Temperature float64 `json:"temperature"`
	// E is the elastic modulus in MPa.
	E float64 `json:"E"`
	// Sy is the yield strength in MPa.
	Sy float64 `json:"Sy"`
	// Su is the ultimate strength in MPa.
	Su float64 `json:"Su"`
	// Poisson is the Poisson coefficient.
	Poisson float64 `json:"poisson"`
}

// Record converts the material to its grid record.
func (m Material) Record() Record {
	return Record{
		FieldID:          float64(m.ID),
		FieldName:        m.Name,
		FieldTemperature: m.Temperature,
		FieldE:           m.E,
		FieldSy:          m.Sy,
		FieldSu:          m.Su,
		FieldPoisson:     m.Poisson,
	}
}

// MaterialFromRecord rebuilds a material from a decoded record.
// Absent numeric fields become zero.
func MaterialFromRecord(r Record) Material {
	return Material{
		ID:          intField(r, FieldID),
		Name:        r.Text(FieldName),
		Temperature: numField(r, FieldTemperature),
		E:           numField(r, FieldE),
		Sy:          numField(r, FieldSy),
		Su:          numField(r, FieldSu),
		Poisson:     numField(r, FieldPoisson),
	}
}

func numField(r Record, field string) float64 {
	v, _ := r.Number(field)
	return v
}

func intField(r Record, field string) int {
	v, _ := r.Number(field)
	return int(v)
}
