package loader

import (
	"context"

	"github.com/bayesimpact/sf-homelessness/pkg/constants"
	"github.com/bayesimpact/sf-homelessness/pkg/logging"
	"github.com/bayesimpact/sf-homelessness/pkg/records"
)

// Connecting Point source column names. The case export writes its key
// column in lowercase while the client export capitalizes it.
const (
	colCaseID      = "Caseid"
	colCaseIDLower = "caseid"
	colClientID    = "Clientid"
	colAge         = "age"
	colServStart   = "servstart"
	colServEnd     = "servend"
	colLastUpdate  = "LastUpdateDate"
)

// LoadConnectingPoint reads the Connecting Point case and client extracts
// and joins them on the case identifier. The join is left: a case without
// client rows is kept with empty client columns, since service episodes
// matter even when the household roster is incomplete.
func (l *Loader) LoadConnectingPoint(ctx context.Context) (records.CPTable, error) {
	cases, err := l.readTable(constants.ConnectingPointDir, constants.CPCaseFile)
	if err != nil {
		return nil, err
	}
	client, err := l.readTable(constants.ConnectingPointDir, constants.CPClientFile)
	if err != nil {
		return nil, err
	}

	cases.rename(colCaseIDLower, colCaseID)
	if err := cases.require(colCaseID, colServStart, colServEnd); err != nil {
		return nil, err
	}
	if err := client.require(colCaseID, colClientID, colAge, colLastUpdate); err != nil {
		return nil, err
	}

	byCase := make(map[string][]int, len(client.rows))
	for i, row := range client.rows {
		if id := client.cell(row, colCaseID); id != "" {
			byCase[id] = append(byCase[id], i)
		}
	}

	out := make(records.CPTable, 0, len(cases.rows))
	unmatched := 0
	for _, row := range cases.rows {
		key := cases.cell(row, colCaseID)
		base := records.CPRecord{
			CaseID:       parseID(key),
			RawServStart: cases.cell(row, colServStart),
			RawServEnd:   cases.cell(row, colServEnd),
		}
		base.ServStart = parseDate(base.RawServStart)
		base.ServEnd = parseDate(base.RawServEnd)

		matches := byCase[key]
		if key == "" || len(matches) == 0 {
			unmatched++
			out = append(out, base)
			continue
		}
		for _, i := range matches {
			crow := client.rows[i]
			rec := base
			rec.RawClientID = parseID(client.cell(crow, colClientID))
			rec.Age = parseAge(client.cell(crow, colAge))
			rec.RawLastUpdate = client.cell(crow, colLastUpdate)
			rec.LastUpdate = parseDate(rec.RawLastUpdate)
			out = append(out, rec)
		}
	}

	logging.Ctx(ctx).Debug().
		Str("table", "connecting_point").
		Int("rows", len(out)).
		Int("unmatched_cases", unmatched).
		Msg("loaded source table")

	return out, nil
}
