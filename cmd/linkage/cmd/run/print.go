package run

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/bayesimpact/sf-homelessness/pkg/linkage"
)

// printSummary reports the outcome of a run on w. Terminals get a rendered
// table, pipes and redirects get the one-line summary.
func printSummary(w io.Writer, result *linkage.Result, written []string) error {
	if f, ok := w.(*os.File); ok && !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		_, err := fmt.Fprintln(w, result.Summary())
		return err
	}

	if err := renderSummaryTable(w, result); err != nil {
		return err
	}

	for _, path := range written {
		if _, err := fmt.Fprintf(w, "Wrote %s\n", path); err != nil {
			return err
		}
	}
	return nil
}

// renderSummaryTable renders the run statistics as a two-column table.
func renderSummaryTable(w io.Writer, result *linkage.Result) error {
	config := tablewriter.Config{}
	align := []tw.Align{tw.AlignLeft, tw.AlignRight}
	config.Header.Alignment = tw.CellAlignment{PerColumn: align}
	config.Row.Alignment = tw.CellAlignment{PerColumn: align}

	table := tablewriter.NewTable(w, tablewriter.WithConfig(config))
	table.Header("Metric", "Value")

	for _, row := range summaryRows(result) {
		if err := table.Append(row[0], row[1]); err != nil {
			return err
		}
	}

	return table.Render()
}

// summaryRows builds the metric rows for the summary table.
func summaryRows(result *linkage.Result) [][]string {
	s := result.Metadata.Stats
	return [][]string{
		{"Run", result.Metadata.RunID},
		{"HMIS records", strconv.Itoa(s.HMISRecords)},
		{"Connecting Point records", strconv.Itoa(s.CPRecords)},
		{"Graph vertices", strconv.Itoa(s.Vertices)},
		{"Cross-system matches", strconv.Itoa(s.CrossMatches)},
		{"People", strconv.Itoa(s.PersonComponents)},
		{"Families", strconv.Itoa(s.FamilyComponents)},
		{"Duration", result.Metadata.Duration.Round(time.Millisecond).String()},
	}
}
