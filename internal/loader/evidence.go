package loader

import (
	"context"

	"github.com/bayesimpact/sf-homelessness/pkg/constants"
	"github.com/bayesimpact/sf-homelessness/pkg/evidence"
	"github.com/bayesimpact/sf-homelessness/pkg/logging"
)

// Evidence file column names. The duplicate exports come from Link Plus
// runs; the match export comes from the cross-system matching pass and
// writes its client column in lowercase.
const (
	colSetID       = "Set ID"
	colMatchClient = "clientid"
)

// LoadHMISDuplicates reads the Link Plus duplicate sets for HMIS subjects.
// Rows are returned in file order with unparseable ids left nil; filtering
// happens when the sets are grouped.
func (l *Loader) LoadHMISDuplicates(ctx context.Context) (evidence.DuplicateTable, error) {
	t, err := l.readTable(constants.HMISDir, constants.HMISDuplicateFile)
	if err != nil {
		return nil, err
	}
	if err := t.require(colSetID, colSubjectID); err != nil {
		return nil, err
	}

	out := make(evidence.DuplicateTable, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, evidence.DuplicateRow{
			SetID:    t.cell(row, colSetID),
			ClientID: parseID(t.cell(row, colSubjectID)),
		})
	}

	logging.Ctx(ctx).Debug().
		Str("table", "hmis_duplicates").
		Int("rows", len(out)).
		Msg("loaded evidence table")

	return out, nil
}

// LoadCPDuplicates reads the Link Plus duplicate sets for Connecting Point
// clients.
func (l *Loader) LoadCPDuplicates(ctx context.Context) (evidence.DuplicateTable, error) {
	t, err := l.readTable(constants.ConnectingPointDir, constants.CPDuplicateFile)
	if err != nil {
		return nil, err
	}
	if err := t.require(colSetID, colClientID); err != nil {
		return nil, err
	}

	out := make(evidence.DuplicateTable, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, evidence.DuplicateRow{
			SetID:    t.cell(row, colSetID),
			ClientID: parseID(t.cell(row, colClientID)),
		})
	}

	logging.Ctx(ctx).Debug().
		Str("table", "cp_duplicates").
		Int("rows", len(out)).
		Msg("loaded evidence table")

	return out, nil
}

// LoadMatches reads the cross-system match results linking Connecting Point
// clients to HMIS subjects.
func (l *Loader) LoadMatches(ctx context.Context) (evidence.MatchTable, error) {
	t, err := l.readTable(constants.MatchingDir, constants.MatchFile)
	if err != nil {
		return nil, err
	}
	if err := t.require(colMatchClient, colSubjectID); err != nil {
		return nil, err
	}

	out := make(evidence.MatchTable, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, evidence.MatchRow{
			CPClientID:    parseID(t.cell(row, colMatchClient)),
			HMISSubjectID: parseID(t.cell(row, colSubjectID)),
		})
	}

	logging.Ctx(ctx).Debug().
		Str("table", "matches").
		Int("rows", len(out)).
		Msg("loaded evidence table")

	return out, nil
}
