// Package sources defines the identifiers of the case-management data
// sources whose records the resolution engine reconciles.
//
// Every raw client identifier is scoped to the source that issued it: the
// same integer can name different people in HMIS and Connecting Point. The
// Tag type carries that scope through graph construction and label
// projection.
package sources

// Tag identifies which case-management system a raw identifier belongs to.
type Tag string

// String returns the string representation of a source tag.
func (t Tag) String() string {
	return string(t)
}

// Known source tags.
const (
	// HMIS is the Homeless Management Information System export.
	HMIS Tag = "h"

	// ConnectingPoint is the Connecting Point case-management export.
	ConnectingPoint Tag = "c"
)

// Tags returns all known source tags in their canonical order.
// Graph construction and label projection both follow this order.
func Tags() []Tag {
	return []Tag{HMIS, ConnectingPoint}
}

// Valid reports whether t is a known source tag.
func (t Tag) Valid() bool {
	switch t {
	case HMIS, ConnectingPoint:
		return true
	}
	return false
}

// Name returns the human-readable name of the source.
func (t Tag) Name() string {
	switch t {
	case HMIS:
		return "HMIS"
	case ConnectingPoint:
		return "Connecting Point"
	}
	return string(t)
}
