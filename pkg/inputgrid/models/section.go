package models

// StressPoint is a stress check point of a section profile.
type StressPoint struct {
	// SectionName is the owning profile name.
	SectionName string `json:"sec_name"`
	// ID is the point number within the profile.
	ID int `json:"id"`
	// Y and Z are the point coordinates in mm.
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	// Qy and Qz are the first moments of area in mm3.
	Qy float64 `json:"Qy"`
	Qz float64 `json:"Qz"`
	// E is the wall thickness at the point in mm.
	E float64 `json:"e"`
	// Wno is the normalized warping coordinate in mm2.
	Wno float64 `json:"Wno"`
	// Sw is the warping statical moment in mm4.
	Sw float64 `json:"Sw"`
}

// SectionProfile represents the geometric properties of a cross-section.
type SectionProfile struct {
	// ID is the profile key.
	ID int `json:"id"`
	// Name is the profile designation (e.g. IPE 100).
	Name string `json:"name"`
	// IsClosed is true for closed (hollow) sections. Not written to the grid.
	IsClosed bool `json:"is_closed"`
	// H is the depth and L the width in mm.
	H float64 `json:"h"`
	L float64 `json:"l"`
	// D is the diameter in mm for circular sections. Not written to the grid.
	D *float64 `json:"D,omitempty"`
	// Tw is the web thickness and Tf the flange thickness in mm.
	Tw float64 `json:"tw"`
	Tf float64 `json:"tf"`
	// A is the cross-section area in mm².
	A float64 `json:"A"`
	// Iy and Iz are the second moments of area in mm4.
	Iy float64 `json:"Iy"`
	Iz float64 `json:"Iz"`
	// Ry and Rz are the radii of gyration in mm.
	Ry float64 `json:"ry"`
	Rz float64 `json:"rz"`
	// Am is the core area in mm². Zero means not applicable and is written
	// as the "-" sentinel.
	Am float64 `json:"Am"`
	// BT and DT are the b/t and d/t slenderness ratios. Not written to the grid.
	BT float64 `json:"b_t"`
	DT float64 `json:"d_t"`
	// StressPoints lists the stress check points. Only the first point's Qy
	// and Qz are written to the grid.
	StressPoints []StressPoint `json:"stress_points,omitempty"`
}

// Record converts the profile to its grid record. J is always written as
// zero; Am zero becomes absent so the grid shows the sentinel.
func (s SectionProfile) Record() Record {
	r := Record{
		FieldID:   float64(s.ID),
		FieldName: s.Name,
		FieldH:    s.H,
		FieldL:    s.L,
		FieldTw:   s.Tw,
		FieldTf:   s.Tf,
		FieldA:    s.A,
		FieldIy:   s.Iy,
		FieldIz:   s.Iz,
		FieldRy:   s.Ry,
		FieldRz:   s.Rz,
		FieldJ:    0.0,
		FieldAm:   nil,
		FieldQy:   0.0,
		FieldQz:   0.0,
	}
	if s.Am != 0 {
		r[FieldAm] = s.Am
	}
	if len(s.StressPoints) > 0 {
		r[FieldQy] = s.StressPoints[0].Qy
		r[FieldQz] = s.StressPoints[0].Qz
	}
	return r
}

// SectionProfileFromRecord rebuilds a profile from a decoded record.
// The grid only holds a summary of the first stress point, so the result
// carries at most one point, numbered 1.
func SectionProfileFromRecord(r Record) SectionProfile {
	s := SectionProfile{
		ID:   intField(r, FieldID),
		Name: r.Text(FieldName),
		H:    numField(r, FieldH),
		L:    numField(r, FieldL),
		Tw:   numField(r, FieldTw),
		Tf:   numField(r, FieldTf),
		A:    numField(r, FieldA),
		Iy:   numField(r, FieldIy),
		Iz:   numField(r, FieldIz),
		Ry:   numField(r, FieldRy),
		Rz:   numField(r, FieldRz),
		Am:   numField(r, FieldAm),
	}
	qy, hasQy := r.Number(FieldQy)
	qz, hasQz := r.Number(FieldQz)
	if (hasQy || hasQz) && (qy != 0 || qz != 0) {
		s.StressPoints = []StressPoint{{SectionName: s.Name, ID: 1, Qy: qy, Qz: qz}}
	}
	return s
}
