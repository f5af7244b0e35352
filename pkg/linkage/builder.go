package linkage

import (
	"github.com/bayesimpact/sf-homelessness/pkg/evidence"
	"github.com/bayesimpact/sf-homelessness/pkg/graph"
	"github.com/bayesimpact/sf-homelessness/pkg/records"
	"github.com/bayesimpact/sf-homelessness/pkg/sources"
)

// BuildPersonGraph constructs the identity graph: one vertex per known raw
// identifier, joined by deduplication evidence within each source and by
// match evidence across them. Identifiers with no evidence stay as singleton
// components, which is what gives every record a label.
func BuildPersonGraph(hmis records.HMISTable, cp records.CPTable, hmisDups, cpDups evidence.DuplicateTable, matches evidence.MatchTable) *graph.Graph {
	g := graph.NewWithCapacity(len(hmis) + len(cp))

	// HMIS identifiers first, then Connecting Point, in row order. The
	// insertion order fixes component enumeration, so this sequence must not
	// be reordered.
	for i := range hmis {
		if hmis[i].RawSubjectID != nil {
			g.Add(graph.Node{Tag: sources.HMIS, ID: *hmis[i].RawSubjectID})
		}
	}
	for i := range cp {
		if cp[i].RawClientID != nil {
			g.Add(graph.Node{Tag: sources.ConnectingPoint, ID: *cp[i].RawClientID})
		}
	}

	addGroupEdges(g, sources.HMIS, duplicateMemberships(hmisDups))
	addGroupEdges(g, sources.ConnectingPoint, duplicateMemberships(cpDups))

	for _, m := range matches.Complete() {
		g.AddEdge(
			graph.Node{Tag: sources.ConnectingPoint, ID: m.CPClientID},
			graph.Node{Tag: sources.HMIS, ID: m.HMISSubjectID},
		)
	}

	return g
}

// BuildFamilyGraph refines the identity graph into the family graph: a clone
// of base with co-family edges added, so family components only ever merge
// identity components and never split them. The base graph is not modified.
func BuildFamilyGraph(base *graph.Graph, hmis records.HMISTable, cp records.CPTable) *graph.Graph {
	g := base.Clone()
	addGroupEdges(g, sources.HMIS, hmisHouseholds(hmis))
	addGroupEdges(g, sources.ConnectingPoint, cpHouseholds(cp))
	return g
}

// addGroupEdges links every member of each group under one tag. A
// single-member group contributes a self-loop: the vertex is created but
// joined to nothing, matching how a lone row is still a person.
func addGroupEdges(g *graph.Graph, tag sources.Tag, groups [][]int64) {
	for _, members := range groups {
		if len(members) == 0 {
			continue
		}
		first := graph.Node{Tag: tag, ID: members[0]}
		if len(members) == 1 {
			g.AddEdge(first, first)
			continue
		}
		for _, id := range members[1:] {
			g.AddEdge(first, graph.Node{Tag: tag, ID: id})
		}
	}
}

// duplicateMemberships flattens a deduplication report into group
// memberships.
func duplicateMemberships(dups evidence.DuplicateTable) [][]int64 {
	groups := dups.Groups()
	members := make([][]int64, len(groups))
	for i, g := range groups {
		members[i] = g.ClientIDs
	}
	return members
}

// hmisHouseholds groups raw subject identifiers by household observation:
// one family site on one program start date. Rows missing the site, the
// start date, or the identifier join no household, and a repeated
// (household, id) pair counts once. Groups come back in first-appearance
// order to keep graph construction deterministic.
func hmisHouseholds(hmis records.HMISTable) [][]int64 {
	type household struct {
		site  int64
		start int64
	}
	type member struct {
		key household
		id  int64
	}

	slot := make(map[household]int)
	seen := make(map[member]struct{})
	var groups [][]int64

	for i := range hmis {
		if hmis[i].FamilySiteID == nil || hmis[i].ProgramStart == nil || hmis[i].RawSubjectID == nil {
			continue
		}
		k := household{site: *hmis[i].FamilySiteID, start: hmis[i].ProgramStart.Unix()}
		m := member{key: k, id: *hmis[i].RawSubjectID}
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}

		gi, ok := slot[k]
		if !ok {
			gi = len(groups)
			slot[k] = gi
			groups = append(groups, nil)
		}
		groups[gi] = append(groups[gi], *hmis[i].RawSubjectID)
	}
	return groups
}

// cpHouseholds groups raw client identifiers by case, with the same
// drop-and-dedupe discipline as hmisHouseholds.
func cpHouseholds(cp records.CPTable) [][]int64 {
	type member struct {
		caseID int64
		id     int64
	}

	slot := make(map[int64]int)
	seen := make(map[member]struct{})
	var groups [][]int64

	for i := range cp {
		if cp[i].CaseID == nil || cp[i].RawClientID == nil {
			continue
		}
		m := member{caseID: *cp[i].CaseID, id: *cp[i].RawClientID}
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}

		gi, ok := slot[*cp[i].CaseID]
		if !ok {
			gi = len(groups)
			slot[*cp[i].CaseID] = gi
			groups = append(groups, nil)
		}
		groups[gi] = append(groups[gi], *cp[i].RawClientID)
	}
	return groups
}
