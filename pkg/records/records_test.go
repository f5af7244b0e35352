package records_test

import (
	"testing"
	"time"

	"github.com/agentstation/utc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bayesimpact/sf-homelessness/pkg/records"
)

func i64(v int64) *int64 {
	return &v
}

func iptr(v int) *int {
	return &v
}

func date(year int, month time.Month, day int) *utc.Time {
	t := utc.New(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
	return &t
}

func TestHMISTableClone(t *testing.T) {
	orig := records.HMISTable{
		{RawSubjectID: i64(1), FamilySiteID: i64(10)},
		{RawSubjectID: i64(2)},
	}

	clone := orig.Clone()
	require.Len(t, clone, 2)

	clone[0].SubjectID = i64(0)
	clone[1].FamilyID = i64(5)
	clone[1].Child = true

	assert.Nil(t, orig[0].SubjectID, "labeling the clone must not label the original")
	assert.Nil(t, orig[1].FamilyID)
	assert.False(t, orig[1].Child)
}

func TestCPTableClone(t *testing.T) {
	orig := records.CPTable{
		{RawClientID: i64(7), CaseID: i64(3)},
	}

	clone := orig.Clone()
	clone[0].ClientID = i64(0)
	clone[0].Family = true

	assert.Nil(t, orig[0].ClientID)
	assert.False(t, orig[0].Family)
}

func TestCloneNil(t *testing.T) {
	assert.Nil(t, records.HMISTable(nil).Clone())
	assert.Nil(t, records.CPTable(nil).Clone())
}
