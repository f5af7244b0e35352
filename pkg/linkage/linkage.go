// Package linkage joins client records across the two case-management
// sources. It builds an identity graph from deduplication and match
// evidence, refines it into a family graph with household evidence, and
// materializes consistent person and family labels onto copies of the
// record tables.
package linkage

import (
	"context"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/bayesimpact/sf-homelessness/pkg/constants"
	"github.com/bayesimpact/sf-homelessness/pkg/errors"
	"github.com/bayesimpact/sf-homelessness/pkg/evidence"
	"github.com/bayesimpact/sf-homelessness/pkg/logging"
	"github.com/bayesimpact/sf-homelessness/pkg/records"
	"github.com/bayesimpact/sf-homelessness/pkg/sources"
)

// Input carries the record tables and the linkage evidence for one resolve.
type Input struct {
	HMIS records.HMISTable
	CP   records.CPTable

	HMISDuplicates evidence.DuplicateTable
	CPDuplicates   evidence.DuplicateTable
	Matches        evidence.MatchTable
}

// Linker is the main interface for resolving people and families across
// sources.
type Linker interface {
	// Resolve links the record tables using the supplied evidence and
	// returns labeled copies together with run metadata. The inputs are not
	// modified.
	Resolve(ctx context.Context, in Input) (*Result, error)
}

// linker is the default implementation of Linker.
type linker struct {
	workers int
	runID   string
}

// New creates a new Linker with options.
func New(opts ...Option) (Linker, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &linker{
		workers: options.workers,
		runID:   options.runID,
	}, nil
}

// Resolve performs the linkage with a clean step-by-step flow.
func (l *linker) Resolve(ctx context.Context, in Input) (*Result, error) {
	result := NewResult()

	// Step 1: Tag the run
	runID := l.runID
	if runID == "" {
		generated, err := gonanoid.New(constants.RunIDLength)
		if err != nil {
			return nil, errors.NewConfigError("linkage", "failed to generate run id", err)
		}
		runID = generated
	}
	result.Metadata.RunID = runID
	ctx = logging.WithRunID(ctx, runID)
	logger := logging.FromContext(ctx)

	// Step 2: Build the identity graph
	person := BuildPersonGraph(in.HMIS, in.CP, in.HMISDuplicates, in.CPDuplicates, in.Matches)
	logger.Debug().
		Int("vertices", person.Len()).
		Msg("Built identity graph")

	// Step 3: Refine it into the family graph
	family := BuildFamilyGraph(person, in.HMIS, in.CP)

	// Step 4: Enumerate components, once per graph
	personComps := person.Components()
	familyComps := family.Components()
	logger.Info().
		Int("vertices", person.Len()).
		Int("person_components", len(personComps)).
		Int("family_components", len(familyComps)).
		Msg("Enumerated components")

	// Step 5: Derive all four label indexes from the two enumerations
	personHMIS, personCP := projections(personComps)
	familyHMIS, familyCP := projections(familyComps)

	personHMISIndex, err := labelIndex("person", sources.HMIS, personHMIS)
	if err != nil {
		return nil, err
	}
	personCPIndex, err := labelIndex("person", sources.ConnectingPoint, personCP)
	if err != nil {
		return nil, err
	}
	familyHMISIndex, err := labelIndex("family", sources.HMIS, familyHMIS)
	if err != nil {
		return nil, err
	}
	familyCPIndex, err := labelIndex("family", sources.ConnectingPoint, familyCP)
	if err != nil {
		return nil, err
	}

	// Step 6: Materialize labels onto copies of the tables. Each
	// materializer reads only raw identifier columns and its own index, so
	// the four can run concurrently.
	hmis := in.HMIS.Clone()
	cp := in.CP.Clone()

	hmisIDs := make([]*int64, len(hmis))
	for i := range hmis {
		hmisIDs[i] = hmis[i].RawSubjectID
	}
	cpIDs := make([]*int64, len(cp))
	for i := range cp {
		cpIDs[i] = cp[i].RawClientID
	}

	var hmisPerson, hmisFamily, cpPerson, cpFamily []*int64
	var eg errgroup.Group
	eg.SetLimit(l.workers)
	eg.Go(func() error {
		var err error
		hmisPerson, err = applyIndex("person", sources.HMIS, hmisIDs, personHMISIndex)
		return err
	})
	eg.Go(func() error {
		var err error
		hmisFamily, err = applyIndex("family", sources.HMIS, hmisIDs, familyHMISIndex)
		return err
	})
	eg.Go(func() error {
		var err error
		cpPerson, err = applyIndex("person", sources.ConnectingPoint, cpIDs, personCPIndex)
		return err
	})
	eg.Go(func() error {
		var err error
		cpFamily, err = applyIndex("family", sources.ConnectingPoint, cpIDs, familyCPIndex)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	for i := range hmis {
		hmis[i].SubjectID = hmisPerson[i]
		hmis[i].FamilyID = hmisFamily[i]
	}
	for i := range cp {
		cp[i].ClientID = cpPerson[i]
		cp[i].FamilyID = cpFamily[i]
	}

	// Step 7: Build and return the result
	result.HMIS = hmis
	result.CP = cp
	result.Metadata.Stats = ResultStatistics{
		HMISRecords:      len(hmis),
		CPRecords:        len(cp),
		Vertices:         person.Len(),
		PersonComponents: len(personComps),
		FamilyComponents: len(familyComps),
		CrossMatches:     len(in.Matches.Complete()),
	}
	result.Finalize()

	logger.Info().
		Int("people", result.Persons()).
		Int("families", result.Families()).
		Dur("duration", result.Metadata.Duration).
		Msg("Resolved person and family labels")

	return result, nil
}
