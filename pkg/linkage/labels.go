package linkage

import (
	"fmt"

	"github.com/bayesimpact/sf-homelessness/pkg/errors"
	"github.com/bayesimpact/sf-homelessness/pkg/graph"
	"github.com/bayesimpact/sf-homelessness/pkg/sources"
)

// projections derives both per-source memberships from a single component
// enumeration. Slot k of each result holds the raw identifiers component k
// contributes to that source, possibly none. Deriving every projection from
// one enumeration is what makes a label mean the same person, or family, in
// both sources.
func projections(comps []graph.Component) (hmisIDs, cpIDs [][]int64) {
	hmisIDs = make([][]int64, len(comps))
	cpIDs = make([][]int64, len(comps))
	for k, comp := range comps {
		hmisIDs[k] = comp.IDs(sources.HMIS)
		cpIDs[k] = comp.IDs(sources.ConnectingPoint)
	}
	return hmisIDs, cpIDs
}

// labelIndex maps every raw identifier in the projected groups to its label,
// the group's position in the enumeration. An identifier claimed by two
// groups means the partition is broken, which is a defect in graph
// construction, never a data problem.
func labelIndex(stage string, tag sources.Tag, groups [][]int64) (map[int64]int64, error) {
	index := make(map[int64]int64)
	for label, ids := range groups {
		for _, id := range ids {
			if prev, ok := index[id]; ok {
				return nil, errors.NewBuildError(stage, tag.String(), id,
					fmt.Sprintf("identifier claimed by components %d and %d", prev, label))
			}
			index[id] = int64(label)
		}
	}
	return index, nil
}

// applyIndex looks up the label for each raw identifier, preserving row
// count and order. A nil identifier yields a nil label. A non-nil identifier
// absent from the index means the vertex set missed a record, so the run
// aborts rather than emit partially labeled output.
func applyIndex(stage string, tag sources.Tag, ids []*int64, index map[int64]int64) ([]*int64, error) {
	labels := make([]*int64, len(ids))
	for i, id := range ids {
		if id == nil {
			continue
		}
		label, ok := index[*id]
		if !ok {
			return nil, errors.NewBuildError(stage, tag.String(), *id,
				"identifier missing from every component")
		}
		l := label
		labels[i] = &l
	}
	return labels, nil
}
