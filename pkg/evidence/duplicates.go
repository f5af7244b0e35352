// Package evidence defines the linkage evidence tables: Link Plus
// deduplication reports and cross-source match results. The tables arrive as
// loosely validated CSV extracts, so each type knows how to clean itself
// before the graph builders consume it.
package evidence

import "strings"

// DuplicateRow is one row of a Link Plus deduplication report. Rows sharing
// a set id were judged to describe the same person within one source.
type DuplicateRow struct {
	SetID    string
	ClientID *int64
}

// DuplicateTable is a parsed deduplication report, in file order.
type DuplicateTable []DuplicateRow

// DuplicateGroup is the cleaned membership of one Link Plus set.
type DuplicateGroup struct {
	SetID     string
	ClientIDs []int64
}

// Groups collapses the table into per-set memberships. Rows missing the set
// id or the client id carry no signal and are dropped. A repeated (set, id)
// pair counts once. Groups come back in order of first appearance with
// members in row order, so downstream graph construction is deterministic.
func (t DuplicateTable) Groups() []DuplicateGroup {
	type pair struct {
		set string
		id  int64
	}

	slot := make(map[string]int, len(t))
	seen := make(map[pair]struct{}, len(t))
	groups := make([]DuplicateGroup, 0)

	for _, row := range t {
		set := strings.TrimSpace(row.SetID)
		if set == "" || row.ClientID == nil {
			continue
		}
		key := pair{set: set, id: *row.ClientID}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		k, ok := slot[set]
		if !ok {
			k = len(groups)
			slot[set] = k
			groups = append(groups, DuplicateGroup{SetID: set})
		}
		groups[k].ClientIDs = append(groups[k].ClientIDs, *row.ClientID)
	}
	return groups
}
