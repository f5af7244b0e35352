package run

import (
	"github.com/spf13/cobra"

	"github.com/bayesimpact/sf-homelessness/internal/appcontext"
)

// NewCommand creates the run command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var flags *Flags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Resolve people and families across both source systems",
		Long: `Run executes the full linkage pipeline against a data drop:

1. Load the HMIS and Connecting Point extracts
2. Link records of the same person using deduplication reports
   and cross-system match results
3. Group people into families using shared households and cases
4. Compute child status and family characteristics per record
5. Export the labeled tables

Every record receives a person identifier and a family identifier
that are consistent across both systems within the run.`,
		Example: `  linkage run                               # Resolve ./data, write CSVs to ./output
  linkage run --data-dir /srv/drops/2016q2  # Resolve a specific data drop
  linkage run --format sqlite               # Write a SQLite database instead of CSVs
  linkage run --format all --workers 8      # Write every export format
  linkage run --encoding windows-1252       # Extracts from a legacy Windows export`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return ExecuteRun(ctx, app, flags)
		},
	}

	// Add run-specific flags
	flags = addRunFlags(cmd)

	return cmd
}
