package models

// Member represents a structural member between nodes.
type Member struct {
	// ID is the member identifier.
	ID int `json:"id"`
	// NodeIDs lists the member nodes in order. Only the first and last are
	// written to the grid.
	NodeIDs []int `json:"nodes_id"`
	// Section is the cross-section profile name.
	Section string `json:"section"`
	// Material is the material grade name.
	Material string `json:"material"`
	// Lambda is the buckling length λ in mm.
	Lambda float64 `json:"lambda_rccm"`
	// Lb is the unbraced length Lc in mm.
	Lb float64 `json:"Lb"`
	// Ky, Kz, Cmy and Cmz are the stiffness-adjustment factors. Nil means
	// the grid default is used on encode.
	Ky  *float64 `json:"ky,omitempty"`
	Kz  *float64 `json:"kz,omitempty"`
	Cmy *float64 `json:"Cmy,omitempty"`
	Cmz *float64 `json:"Cmz,omitempty"`
}

// Record converts the member to its grid record. Absent end nodes stay absent.
func (m Member) Record() Record {
	r := Record{
		FieldID:        float64(m.ID),
		FieldStartNode: nil,
		FieldEndNode:   nil,
		FieldSection:   m.Section,
		FieldMaterial:  m.Material,
		FieldLambda:    m.Lambda,
		FieldLb:        m.Lb,
	}
	if len(m.NodeIDs) > 0 {
		r[FieldStartNode] = float64(m.NodeIDs[0])
		r[FieldEndNode] = float64(m.NodeIDs[len(m.NodeIDs)-1])
	}
	setOptional(r, FieldKy, m.Ky)
	setOptional(r, FieldKz, m.Kz)
	setOptional(r, FieldCmy, m.Cmy)
	setOptional(r, FieldCmz, m.Cmz)
	return r
}

// MemberFromRecord rebuilds a member from a decoded record. The node list
// holds only the start and end nodes present in the grid.
func MemberFromRecord(r Record) Member {
	m := Member{
		ID:       intField(r, FieldID),
		Section:  r.Text(FieldSection),
		Material: r.Text(FieldMaterial),
		Lambda:   numField(r, FieldLambda),
		Lb:       numField(r, FieldLb),
		Ky:       optionalField(r, FieldKy),
		Kz:       optionalField(r, FieldKz),
		Cmy:      optionalField(r, FieldCmy),
		Cmz:      optionalField(r, FieldCmz),
	}
	if start, ok := r.Number(FieldStartNode); ok {
		m.NodeIDs = append(m.NodeIDs, int(start))
	}
	if end, ok := r.Number(FieldEndNode); ok {
		m.NodeIDs = append(m.NodeIDs, int(end))
	}
	return m
}

func setOptional(r Record, field string, v *float64) {
	if v != nil {
		r[field] = *v
	}
}

func optionalField(r Record, field string) *float64 {
	v, ok := r.Number(field)
	if !ok {
		return nil
	}
	return &v
}
