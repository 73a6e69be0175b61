package models

// Input groups the four record collections of one input grid.
type Input struct {
	Materials []Material `json:"materials"`
	Members   []Member   `json:"members"`
	// Combinations nil means the default situations are written.
	Combinations []CombinationRow `json:"combinations"`
	Sections     []SectionProfile `json:"sections"`
}

// Records converts the typed input to a record set keyed by section.
func (in *Input) Records() RecordSet {
	set := RecordSet{
		SectionMaterials:    make([]Record, 0, len(in.Materials)),
		SectionMembers:      make([]Record, 0, len(in.Members)),
		SectionCombinations: nil,
		SectionProfiles:     make([]Record, 0, len(in.Sections)),
	}
	for _, m := range in.Materials {
		set[SectionMaterials] = append(set[SectionMaterials], m.Record())
	}
	for _, m := range in.Members {
		set[SectionMembers] = append(set[SectionMembers], m.Record())
	}
	combos := in.Combinations
	if combos == nil {
		combos = DefaultCombinations()
	}
	set[SectionCombinations] = make([]Record, 0, len(combos))
	for _, c := range combos {
		set[SectionCombinations] = append(set[SectionCombinations], c.Record())
	}
	for _, s := range in.Sections {
		set[SectionProfiles] = append(set[SectionProfiles], s.Record())
	}
	return set
}

// InputFromRecords rebuilds typed collections from a decoded record set.
func InputFromRecords(set RecordSet) *Input {
	in := &Input{}
	for _, r := range set[SectionMaterials] {
		in.Materials = append(in.Materials, MaterialFromRecord(r))
	}
	for _, r := range set[SectionMembers] {
		in.Members = append(in.Members, MemberFromRecord(r))
	}
	in.Combinations = []CombinationRow{}
	for _, r := range set[SectionCombinations] {
		in.Combinations = append(in.Combinations, CombinationFromRecord(r))
	}
	for _, r := range set[SectionProfiles] {
		in.Sections = append(in.Sections, SectionProfileFromRecord(r))
	}
	return in
}
