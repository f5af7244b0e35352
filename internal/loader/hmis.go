package loader

import (
	"context"

	"github.com/bayesimpact/sf-homelessness/pkg/constants"
	"github.com/bayesimpact/sf-homelessness/pkg/logging"
	"github.com/bayesimpact/sf-homelessness/pkg/records"
)

// HMIS source column names.
const (
	colSubjectID    = "Subject Unique Identifier"
	colFamilySite   = "Family Site Identifier"
	colProgramStart = "Program Start Date"
	colProgramEnd   = "Program End Date"
	colDOB          = "DOB"
)

// LoadHMIS reads the HMIS program and client extracts and joins them on the
// subject identifier. The join is inner: program rows without a client row
// are dropped, because the client extract is the authoritative roster and
// the program extract was pulled separately.
func (l *Loader) LoadHMIS(ctx context.Context) (records.HMISTable, error) {
	program, err := l.readTable(constants.HMISDir, constants.HMISProgramFile)
	if err != nil {
		return nil, err
	}
	client, err := l.readTable(constants.HMISDir, constants.HMISClientFile)
	if err != nil {
		return nil, err
	}

	if err := program.require(colSubjectID, colFamilySite, colProgramStart, colProgramEnd); err != nil {
		return nil, err
	}
	if err := client.require(colSubjectID, colDOB); err != nil {
		return nil, err
	}

	bySubject := make(map[string][]int, len(client.rows))
	for i, row := range client.rows {
		if id := client.cell(row, colSubjectID); id != "" {
			bySubject[id] = append(bySubject[id], i)
		}
	}

	out := make(records.HMISTable, 0, len(program.rows))
	unmatched := 0
	for _, row := range program.rows {
		key := program.cell(row, colSubjectID)
		matches := bySubject[key]
		if key == "" || len(matches) == 0 {
			unmatched++
			continue
		}
		for _, i := range matches {
			crow := client.rows[i]
			rec := records.HMISRecord{
				RawSubjectID:    parseID(key),
				FamilySiteID:    parseID(program.cell(row, colFamilySite)),
				RawProgramStart: program.cell(row, colProgramStart),
				RawProgramEnd:   program.cell(row, colProgramEnd),
				RawDOB:          client.cell(crow, colDOB),
			}
			rec.ProgramStart = parseDate(rec.RawProgramStart)
			rec.ProgramEnd = parseDate(rec.RawProgramEnd)
			rec.DOB = parseDate(rec.RawDOB)
			out = append(out, rec)
		}
	}

	logging.Ctx(ctx).Debug().
		Str("table", "hmis").
		Int("rows", len(out)).
		Int("unmatched_program_rows", unmatched).
		Msg("loaded source table")

	return out, nil
}
