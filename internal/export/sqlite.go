package export

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/agentstation/utc"
	_ "modernc.org/sqlite"

	"github.com/bayesimpact/sf-homelessness/pkg/linkage"
)

//go:embed schema.sql
var schemaSQL string

// Database is the SQLite sink for labeled tables. Each run appends a row to
// the runs table and replaces the hmis and cp tables, so the database always
// holds the latest labels plus a run history.
type Database struct {
	db   *sql.DB
	path string
}

// OpenDatabase opens (or creates) the SQLite database at path and ensures
// the schema exists. Use ":memory:" for an in-memory database.
func OpenDatabase(path string) (*Database, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return &Database{db: db, path: path}, nil
}

// Close closes the database connection.
func (d *Database) Close() error {
	if d.db == nil {
		return nil
	}
	return d.db.Close()
}

// WriteResult stores a completed run: its metadata, then both labeled
// tables, in one transaction.
func (d *Database) WriteResult(ctx context.Context, result *linkage.Result) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	meta := result.Metadata
	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (run_id, started_at, completed_at, hmis_records, cp_records, people, families)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		meta.RunID,
		meta.StartTime.UTC().Format(time.RFC3339),
		meta.EndTime.UTC().Format(time.RFC3339),
		meta.Stats.HMISRecords,
		meta.Stats.CPRecords,
		meta.Stats.PersonComponents,
		meta.Stats.FamilyComponents,
	)
	if err != nil {
		return fmt.Errorf("inserting run %s: %w", meta.RunID, err)
	}

	// Replace table contents; the runs table keeps history.
	if _, err := tx.ExecContext(ctx, `DELETE FROM hmis`); err != nil {
		return fmt.Errorf("clearing hmis table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM cp`); err != nil {
		return fmt.Errorf("clearing cp table: %w", err)
	}

	if err := d.insertHMIS(ctx, tx, result); err != nil {
		return err
	}
	if err := d.insertCP(ctx, tx, result); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing run %s: %w", meta.RunID, err)
	}
	return nil
}

func (d *Database) insertHMIS(ctx context.Context, tx *sql.Tx, result *linkage.Result) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO hmis (run_id, raw_subject_id, subject_id, family_id, family_site_id,
		 program_start, program_end, dob, age_entered,
		 child, adult, with_child, with_adult, with_family, family)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing hmis insert: %w", err)
	}
	defer stmt.Close()

	for i := range result.HMIS {
		r := &result.HMIS[i]
		_, err := stmt.ExecContext(ctx,
			result.Metadata.RunID,
			nullID(r.RawSubjectID),
			nullID(r.SubjectID),
			nullID(r.FamilyID),
			nullID(r.FamilySiteID),
			nullDate(r.ProgramStart),
			nullDate(r.ProgramEnd),
			nullDate(r.DOB),
			nullInt(r.AgeEntered),
			r.Child, r.Adult, r.WithChild, r.WithAdult, r.WithFamily, r.Family,
		)
		if err != nil {
			return fmt.Errorf("inserting hmis row %d: %w", i, err)
		}
	}
	return nil
}

func (d *Database) insertCP(ctx context.Context, tx *sql.Tx, result *linkage.Result) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO cp (run_id, raw_client_id, client_id, family_id, case_id,
		 serv_start, serv_end, last_update, age,
		 child, adult, with_child, with_adult, with_family, family)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing cp insert: %w", err)
	}
	defer stmt.Close()

	for i := range result.CP {
		r := &result.CP[i]
		_, err := stmt.ExecContext(ctx,
			result.Metadata.RunID,
			nullID(r.RawClientID),
			nullID(r.ClientID),
			nullID(r.FamilyID),
			nullID(r.CaseID),
			nullDate(r.ServStart),
			nullDate(r.ServEnd),
			nullDate(r.LastUpdate),
			nullInt(r.Age),
			r.Child, r.Adult, r.WithChild, r.WithAdult, r.WithFamily, r.Family,
		)
		if err != nil {
			return fmt.Errorf("inserting cp row %d: %w", i, err)
		}
	}
	return nil
}

func nullID(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullDate(t *utc.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339)
}
