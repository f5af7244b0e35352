package records

import (
	"time"

	"github.com/bayesimpact/sf-homelessness/pkg/constants"
)

// ComputeChildStatus fills AgeEntered, Child, and Adult for every row. A
// client is a child when their age at program entry is known and below the
// adult threshold; a client with no computable age counts as an adult.
func (t HMISTable) ComputeChildStatus() {
	for i := range t {
		rec := &t[i]
		rec.AgeEntered = nil
		if rec.DOB != nil && rec.ProgramStart != nil {
			years := wholeYears(rec.DOB.Time, rec.ProgramStart.Time)
			rec.AgeEntered = &years
		}
		rec.Child = rec.AgeEntered != nil && *rec.AgeEntered < constants.AdultAge
		rec.Adult = !rec.Child
	}
}

// ComputeChildStatus fills Child and Adult for every row from the recorded
// age. A client with no recorded age counts as an adult.
func (t CPTable) ComputeChildStatus() {
	for i := range t {
		rec := &t[i]
		rec.Child = rec.Age != nil && *rec.Age < constants.AdultAge
		rec.Adult = !rec.Child
	}
}

// wholeYears returns the whole calendar years from one instant to another,
// negative when to precedes from. Source extracts occasionally carry entry
// dates before birth dates; the noise passes through rather than aborting a
// run.
func wholeYears(from, to time.Time) int {
	if to.Before(from) {
		return -wholeYears(to, from)
	}
	years := to.Year() - from.Year()
	if from.AddDate(years, 0, 0).After(to) {
		years--
	}
	return years
}
