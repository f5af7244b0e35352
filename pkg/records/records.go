// Package records holds the client record tables of the two case-management
// sources together with the fields the linkage pipeline derives: consistent
// person and family labels, age at program entry, and household structure
// flags.
package records

import (
	"github.com/agentstation/utc"
)

// HMISRecord is one program enrollment row from the HMIS extract, after the
// program and client tables have been joined.
type HMISRecord struct {
	// RawSubjectID is the subject identifier as issued by HMIS. It stays
	// untouched through the whole pipeline.
	RawSubjectID *int64

	// SubjectID is the deduplicated person label. Records of the same person
	// share it, within HMIS and across sources.
	SubjectID *int64

	// FamilyID is the family label. Records of members of the same family
	// share it, within HMIS and across sources.
	FamilyID *int64

	// FamilySiteID identifies the family site of the enrollment. Together
	// with ProgramStart it defines one household observation.
	FamilySiteID *int64

	ProgramStart *utc.Time
	ProgramEnd   *utc.Time
	DOB          *utc.Time

	// Raw date cells are preserved verbatim alongside their parsed values.
	RawProgramStart string
	RawProgramEnd   string
	RawDOB          string

	// AgeEntered is the client's age in whole years at program entry, nil
	// when DOB or ProgramStart is missing.
	AgeEntered *int

	Child bool
	Adult bool

	WithChild  bool
	WithAdult  bool
	WithFamily bool
	Family     bool
}

// CPRecord is one case row from the Connecting Point extract, after the case
// and client tables have been joined.
type CPRecord struct {
	// RawClientID is the client identifier as issued by Connecting Point. It
	// stays untouched through the whole pipeline.
	RawClientID *int64

	// ClientID is the deduplicated person label. Records of the same person
	// share it, within Connecting Point and across sources.
	ClientID *int64

	// FamilyID is the family label. Records of members of the same family
	// share it, within Connecting Point and across sources.
	FamilyID *int64

	// CaseID identifies the case the record belongs to. Clients on the same
	// case are taken to be one household.
	CaseID *int64

	ServStart  *utc.Time
	ServEnd    *utc.Time
	LastUpdate *utc.Time

	RawServStart  string
	RawServEnd    string
	RawLastUpdate string

	// Age is the client's age as recorded by Connecting Point.
	Age *int

	Child bool
	Adult bool

	WithChild  bool
	WithAdult  bool
	WithFamily bool
	Family     bool
}

// HMISTable is the joined HMIS extract in row order.
type HMISTable []HMISRecord

// CPTable is the joined Connecting Point extract in row order.
type CPTable []CPRecord

// Clone returns a row-for-row copy of the table. Pointer fields keep pointing
// at the same values; the pipeline only ever replaces pointers, never writes
// through them.
func (t HMISTable) Clone() HMISTable {
	if t == nil {
		return nil
	}
	return append(HMISTable(nil), t...)
}

// Clone returns a row-for-row copy of the table. Pointer fields keep pointing
// at the same values; the pipeline only ever replaces pointers, never writes
// through them.
func (t CPTable) Clone() CPTable {
	if t == nil {
		return nil
	}
	return append(CPTable(nil), t...)
}
