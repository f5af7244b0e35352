package evidence

// MatchRow is one row of the probabilistic match results that join
// Connecting Point clients to HMIS subjects.
type MatchRow struct {
	CPClientID    *int64
	HMISSubjectID *int64
}

// MatchTable is a parsed match results extract, in file order.
type MatchTable []MatchRow

// Match is a surviving cross-source link.
type Match struct {
	CPClientID    int64
	HMISSubjectID int64
}

// Complete returns the rows with both identifiers present, in file order.
// Rows missing either side carry no linkage signal and are dropped.
func (t MatchTable) Complete() []Match {
	matches := make([]Match, 0, len(t))
	for _, row := range t {
		if row.CPClientID == nil || row.HMISSubjectID == nil {
			continue
		}
		matches = append(matches, Match{
			CPClientID:    *row.CPClientID,
			HMISSubjectID: *row.HMISSubjectID,
		})
	}
	return matches
}
