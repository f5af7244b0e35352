package run

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bayesimpact/sf-homelessness/internal/appcontext"
	"github.com/bayesimpact/sf-homelessness/pkg/linkage"
)

const testDataDir = "../../../../internal/loader/testdata/data"

func quietApp() *appcontext.Mock {
	return &appcontext.Mock{
		QuietFunc: func() bool { return true },
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatCSV, false},
		{"csv", FormatCSV, false},
		{"CSV", FormatCSV, false},
		{"sqlite", FormatSQLite, false},
		{"all", FormatAll, false},
		{"parquet", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExecuteRun(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   []string
	}{
		{"csv", "csv", []string{"hmis.csv", "cp.csv"}},
		{"sqlite", "sqlite", []string{"linkage.db"}},
		{"all", "all", []string{"hmis.csv", "cp.csv", "linkage.db"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := t.TempDir()
			flags := &Flags{
				DataDir:   testDataDir,
				OutputDir: out,
				Format:    tt.format,
				RunID:     "cli-" + tt.name,
			}

			require.NoError(t, ExecuteRun(context.Background(), quietApp(), flags))

			for _, name := range tt.want {
				info, err := os.Stat(filepath.Join(out, name))
				require.NoError(t, err, "expected %s to be written", name)
				assert.Greater(t, info.Size(), int64(0))
			}
		})
	}
}

func TestExecuteRunInvalidFormat(t *testing.T) {
	flags := &Flags{
		DataDir:   testDataDir,
		OutputDir: t.TempDir(),
		Format:    "parquet",
	}

	err := ExecuteRun(context.Background(), quietApp(), flags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestExecuteRunMissingData(t *testing.T) {
	flags := &Flags{
		DataDir:   filepath.Join(t.TempDir(), "nope"),
		OutputDir: t.TempDir(),
	}

	err := ExecuteRun(context.Background(), quietApp(), flags)
	require.Error(t, err)
}

func TestRunCommandParsesFlags(t *testing.T) {
	out := t.TempDir()

	cmd := NewCommand(quietApp())
	cmd.SetArgs([]string{
		"--data-dir", testDataDir,
		"--output-dir", out,
		"--format", "csv",
		"--run-id", "cli-cobra",
	})

	require.NoError(t, cmd.ExecuteContext(context.Background()))

	_, err := os.Stat(filepath.Join(out, "hmis.csv"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(out, "cp.csv"))
	require.NoError(t, err)
}

func TestSummaryRows(t *testing.T) {
	result := linkage.NewResult()
	result.Metadata.RunID = "summary-run"
	result.Metadata.Stats = linkage.ResultStatistics{
		HMISRecords:      3,
		CPRecords:        4,
		Vertices:         6,
		PersonComponents: 2,
		FamilyComponents: 2,
		CrossMatches:     2,
	}
	result.Finalize()

	rows := summaryRows(result)

	require.Len(t, rows, 8)
	assert.Equal(t, []string{"Run", "summary-run"}, rows[0])
	assert.Equal(t, []string{"HMIS records", "3"}, rows[1])
	assert.Equal(t, []string{"Connecting Point records", "4"}, rows[2])
	assert.Equal(t, []string{"People", "2"}, rows[5])
	assert.Equal(t, []string{"Families", "2"}, rows[6])
}

func TestPrintSummaryRendersTable(t *testing.T) {
	result := linkage.NewResult()
	result.Metadata.RunID = "print-run"
	result.Metadata.Stats = linkage.ResultStatistics{
		HMISRecords:      3,
		CPRecords:        4,
		PersonComponents: 2,
		FamilyComponents: 2,
	}
	result.Finalize()

	var buf bytes.Buffer
	require.NoError(t, printSummary(&buf, result, []string{"output/hmis.csv"}))

	out := buf.String()
	assert.Contains(t, out, "People")
	assert.Contains(t, out, "Families")
	assert.Contains(t, out, "print-run")
	assert.Contains(t, out, "Wrote output/hmis.csv")
}
