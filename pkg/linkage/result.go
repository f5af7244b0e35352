package linkage

import (
	"fmt"
	"time"

	"github.com/bayesimpact/sf-homelessness/pkg/records"
)

// Result represents the outcome of a resolve operation.
type Result struct {
	// Labeled copies of the input tables. The inputs themselves are never
	// modified.
	HMIS records.HMISTable
	CP   records.CPTable

	// Metadata
	Metadata ResultMetadata

	// Warnings that did not stop the run
	Warnings []string
}

// ResultMetadata contains metadata about the resolve run.
type ResultMetadata struct {
	// RunID identifies this run in logs and exports
	RunID string

	// StartTime when the resolve started
	StartTime time.Time

	// EndTime when the resolve completed
	EndTime time.Time

	// Duration of the resolve
	Duration time.Duration

	// Stats about the graphs and tables
	Stats ResultStatistics
}

// ResultStatistics contains statistics about the resolve.
type ResultStatistics struct {
	HMISRecords      int
	CPRecords        int
	Vertices         int
	PersonComponents int
	FamilyComponents int
	CrossMatches     int
	TotalTimeMs      int64
}

// NewResult creates a new result with defaults.
func NewResult() *Result {
	return &Result{
		Warnings: []string{},
		Metadata: ResultMetadata{
			StartTime: time.Now(),
		},
	}
}

// Finalize calculates duration and marks completion.
func (r *Result) Finalize() {
	r.Metadata.EndTime = time.Now()
	r.Metadata.Duration = r.Metadata.EndTime.Sub(r.Metadata.StartTime)
	r.Metadata.Stats.TotalTimeMs = r.Metadata.Duration.Milliseconds()
}

// Persons returns the number of distinct people found across both sources.
func (r *Result) Persons() int {
	return r.Metadata.Stats.PersonComponents
}

// Families returns the number of distinct families found across both sources.
func (r *Result) Families() int {
	return r.Metadata.Stats.FamilyComponents
}

// Summary returns a human-readable summary of the result.
func (r *Result) Summary() string {
	s := r.Metadata.Stats
	return fmt.Sprintf("Resolved %d HMIS and %d Connecting Point records into %d people and %d families in %s",
		s.HMISRecords, s.CPRecords, s.PersonComponents, s.FamilyComponents, r.Metadata.Duration.Round(time.Millisecond))
}
