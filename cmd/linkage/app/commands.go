package app

import (
	"github.com/spf13/cobra"

	"github.com/bayesimpact/sf-homelessness/cmd/linkage/cmd/run"
)

// CreateRunCommand creates the run command with app dependencies.
func (a *App) CreateRunCommand() *cobra.Command {
	return run.NewCommand(a)
}

// CreateVersionCommand creates the version command.
func (a *App) CreateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("linkage %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
