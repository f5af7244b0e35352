package records

// ComputeFamilyCharacteristics fills the household structure flags. It runs
// in two stages. Stage one groups rows by household observation, one family
// site on one program start date: WithChild and WithAdult record whether any
// group member is a child or an adult, and WithFamily marks groups holding
// both. Rows missing the site or the start date belong to no group and keep
// false flags. Stage two groups rows by family label: Family marks every
// record of a family that showed child-and-adult structure on any of its
// observations. Rows with no family label keep Family false.
//
// Child status must be computed first. Calling it again after labels change
// recomputes the flags from scratch.
func (t HMISTable) ComputeFamilyCharacteristics() {
	type household struct {
		site  int64
		start int64
	}

	for i := range t {
		t[i].WithChild = false
		t[i].WithAdult = false
		t[i].WithFamily = false
		t[i].Family = false
	}

	groups := make(map[household][]int)
	for i := range t {
		if t[i].FamilySiteID == nil || t[i].ProgramStart == nil {
			continue
		}
		k := household{site: *t[i].FamilySiteID, start: t[i].ProgramStart.Unix()}
		groups[k] = append(groups[k], i)
	}
	for _, rows := range groups {
		var anyChild, anyAdult bool
		for _, i := range rows {
			anyChild = anyChild || t[i].Child
			anyAdult = anyAdult || t[i].Adult
		}
		for _, i := range rows {
			t[i].WithChild = anyChild
			t[i].WithAdult = anyAdult
			t[i].WithFamily = anyChild && anyAdult
		}
	}

	families := make(map[int64][]int)
	for i := range t {
		if t[i].FamilyID == nil {
			continue
		}
		families[*t[i].FamilyID] = append(families[*t[i].FamilyID], i)
	}
	for _, rows := range families {
		var anyFamily bool
		for _, i := range rows {
			anyFamily = anyFamily || t[i].WithFamily
		}
		for _, i := range rows {
			t[i].Family = anyFamily
		}
	}
}

// ComputeFamilyCharacteristics fills the household structure flags the same
// way as for HMIS, with the case standing in for the household observation:
// stage one groups rows by case id, stage two by family label.
func (t CPTable) ComputeFamilyCharacteristics() {
	for i := range t {
		t[i].WithChild = false
		t[i].WithAdult = false
		t[i].WithFamily = false
		t[i].Family = false
	}

	groups := make(map[int64][]int)
	for i := range t {
		if t[i].CaseID == nil {
			continue
		}
		groups[*t[i].CaseID] = append(groups[*t[i].CaseID], i)
	}
	for _, rows := range groups {
		var anyChild, anyAdult bool
		for _, i := range rows {
			anyChild = anyChild || t[i].Child
			anyAdult = anyAdult || t[i].Adult
		}
		for _, i := range rows {
			t[i].WithChild = anyChild
			t[i].WithAdult = anyAdult
			t[i].WithFamily = anyChild && anyAdult
		}
	}

	families := make(map[int64][]int)
	for i := range t {
		if t[i].FamilyID == nil {
			continue
		}
		families[*t[i].FamilyID] = append(families[*t[i].FamilyID], i)
	}
	for _, rows := range families {
		var anyFamily bool
		for _, i := range rows {
			anyFamily = anyFamily || t[i].WithFamily
		}
		for _, i := range rows {
			t[i].Family = anyFamily
		}
	}
}
