// Package run provides the run command implementation.
package run

import (
	"github.com/spf13/cobra"

	homelessness "github.com/bayesimpact/sf-homelessness"
	"github.com/bayesimpact/sf-homelessness/internal/appcontext"
)

// Flags holds the run command flags.
type Flags struct {
	DataDir   string
	Manifest  string
	OutputDir string
	Format    string
	Encoding  string
	Workers   int
	RunID     string
}

// addRunFlags adds run-specific flags to the command.
func addRunFlags(cmd *cobra.Command) *Flags {
	flags := &Flags{}

	cmd.Flags().StringVarP(&flags.DataDir, "data-dir", "d", "",
		"Directory holding the quarterly extracts (default \"data\")")
	cmd.Flags().StringVarP(&flags.Manifest, "manifest", "m", "",
		"YAML manifest describing the data drop")
	cmd.Flags().StringVarP(&flags.OutputDir, "output-dir", "o", "",
		"Directory for the labeled tables (default \"output\")")
	cmd.Flags().StringVarP(&flags.Format, "format", "f", "",
		"Export format: csv, sqlite, all (default \"csv\")")
	cmd.Flags().StringVar(&flags.Encoding, "encoding", "",
		"Source file encoding: utf-8, windows-1252, latin-1")
	cmd.Flags().IntVar(&flags.Workers, "workers", 0,
		"Concurrent label materialization workers")
	cmd.Flags().StringVar(&flags.RunID, "run-id", "",
		"Explicit run identifier (default generated)")

	return flags
}

// BuildCleanOptions creates the facade options for a run from the parsed
// flags, falling back to app configuration where a flag was not given.
func BuildCleanOptions(app appcontext.Interface, flags *Flags) []homelessness.Option {
	opts := []homelessness.Option{homelessness.WithLogger(app.Logger())}

	dataDir := flags.DataDir
	if dataDir == "" {
		dataDir = app.DataDir()
	}
	if dataDir != "" {
		opts = append(opts, homelessness.WithDataDir(dataDir))
	}
	if flags.Manifest != "" {
		opts = append(opts, homelessness.WithManifest(flags.Manifest))
	}

	encoding := flags.Encoding
	if encoding == "" {
		encoding = app.Encoding()
	}
	if encoding != "" {
		opts = append(opts, homelessness.WithEncoding(encoding))
	}

	workers := flags.Workers
	if workers == 0 {
		workers = app.Workers()
	}
	if workers > 0 {
		opts = append(opts, homelessness.WithWorkers(workers))
	}

	if flags.RunID != "" {
		opts = append(opts, homelessness.WithRunID(flags.RunID))
	}

	return opts
}
