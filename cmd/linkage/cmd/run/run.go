package run

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	homelessness "github.com/bayesimpact/sf-homelessness"
	"github.com/bayesimpact/sf-homelessness/internal/appcontext"
	"github.com/bayesimpact/sf-homelessness/internal/export"
	"github.com/bayesimpact/sf-homelessness/pkg/constants"
	"github.com/bayesimpact/sf-homelessness/pkg/errors"
	"github.com/bayesimpact/sf-homelessness/pkg/linkage"
)

// Format selects which exports a run writes.
type Format string

const (
	// FormatCSV writes the labeled tables as CSV files.
	FormatCSV Format = "csv"
	// FormatSQLite writes the labeled tables into a SQLite database.
	FormatSQLite Format = "sqlite"
	// FormatAll writes every export format.
	FormatAll Format = "all"
)

// ParseFormat converts a string to a Format with validation. An empty
// string selects the CSV default.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(s))
	switch format {
	case "":
		return FormatCSV, nil
	case FormatCSV, FormatSQLite, FormatAll:
		return format, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be one of: csv, sqlite, all", s)
	}
}

// ExecuteRun orchestrates the complete linkage run.
func ExecuteRun(ctx context.Context, app appcontext.Interface, flags *Flags) error {
	format, err := ParseFormat(flags.Format)
	if err != nil {
		return err
	}

	outputDir := flags.OutputDir
	if outputDir == "" {
		outputDir = app.OutputDir()
	}

	// Resolve identities and compute characteristics
	opts := BuildCleanOptions(app, flags)
	result, err := homelessness.Clean(ctx, opts...)
	if err != nil {
		return err
	}

	// Export the labeled tables
	written, err := writeOutputs(ctx, format, outputDir, result)
	if err != nil {
		return err
	}

	app.Logger().Info().
		Str("run_id", result.Metadata.RunID).
		Strs("outputs", written).
		Msg("wrote labeled tables")

	if !app.Quiet() {
		return printSummary(os.Stdout, result, written)
	}

	return nil
}

// writeOutputs writes the exports selected by format into outputDir and
// returns the paths written.
func writeOutputs(ctx context.Context, format Format, outputDir string, result *linkage.Result) ([]string, error) {
	if err := os.MkdirAll(outputDir, constants.DirPermissions); err != nil {
		return nil, errors.WrapIO("create", outputDir, err)
	}

	var written []string

	if format == FormatCSV || format == FormatAll {
		if err := export.WriteCSV(outputDir, result); err != nil {
			return nil, err
		}
		written = append(written,
			filepath.Join(outputDir, constants.HMISOutputFile),
			filepath.Join(outputDir, constants.CPOutputFile),
		)
	}

	if format == FormatSQLite || format == FormatAll {
		path := filepath.Join(outputDir, constants.DatabaseFile)
		db, err := export.OpenDatabase(path)
		if err != nil {
			return nil, err
		}
		if err := db.WriteResult(ctx, result); err != nil {
			//nolint:errcheck // the write error is the one worth reporting
			_ = db.Close()
			return nil, err
		}
		if err := db.Close(); err != nil {
			return nil, err
		}
		written = append(written, path)
	}

	return written, nil
}
