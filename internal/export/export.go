// Package export writes labeled tables to their downstream formats. The CSV
// writer reproduces the column contract of the original research extracts so
// existing analysis notebooks keep working; the SQLite writer feeds the same
// rows to analysts who prefer SQL.
package export

import (
	"strconv"

	"github.com/agentstation/utc"

	"github.com/bayesimpact/sf-homelessness/pkg/constants"
)

// Output column headers, in file order. The label columns carry the bare
// source names while the source identifiers keep their Raw prefix.
var (
	hmisColumns = []string{
		"Raw Subject Unique Identifier",
		"Subject Unique Identifier",
		"Family Identifier",
		"Family Site Identifier",
		"Raw Program Start Date",
		"Program Start Date",
		"Raw Program End Date",
		"Program End Date",
		"Raw DOB",
		"DOB",
		"Age Entered",
		"Child?",
		"Adult?",
		"With Child?",
		"With Adult?",
		"With Family?",
		"Family?",
	}

	cpColumns = []string{
		"Raw Clientid",
		"Clientid",
		"Familyid",
		"Caseid",
		"Raw servstart",
		"servstart",
		"Raw servend",
		"servend",
		"Raw LastUpdateDate",
		"LastUpdateDate",
		"age",
		"Child?",
		"Adult?",
		"With Child?",
		"With Adult?",
		"With Family?",
		"Family?",
	}
)

func formatID(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatDate(t *utc.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(constants.DateFormatISO)
}

// formatBool matches the spelling of the original exports.
func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
