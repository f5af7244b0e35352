package homelessness_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	homelessness "github.com/bayesimpact/sf-homelessness"
	"github.com/bayesimpact/sf-homelessness/pkg/errors"
	"github.com/bayesimpact/sf-homelessness/pkg/logging"
)

const testDataDir = "internal/loader/testdata/data"

func TestClean(t *testing.T) {
	result, err := homelessness.Clean(context.Background(),
		homelessness.WithDataDir(testDataDir),
		homelessness.WithRunID("full-pipeline"),
		homelessness.WithLogger(logging.NewNopLogger()),
	)
	require.NoError(t, err)

	require.Len(t, result.HMIS, 3)
	require.Len(t, result.CP, 4)

	hmis, cp := result.HMIS, result.CP

	// Duplicate set {100,101}, match 55-101, and duplicate set {55,56}
	// chain into one person; 999 matches 57 through the match file.
	require.NotNil(t, hmis[0].SubjectID)
	assert.Equal(t, *hmis[0].SubjectID, *hmis[1].SubjectID)
	assert.Equal(t, *hmis[0].SubjectID, *cp[0].ClientID)
	assert.Equal(t, *hmis[0].SubjectID, *cp[1].ClientID)
	assert.Equal(t, *hmis[2].SubjectID, *cp[2].ClientID)
	assert.NotEqual(t, *hmis[0].SubjectID, *hmis[2].SubjectID)

	// The case row without a client carries no labels.
	assert.Nil(t, cp[3].ClientID)
	assert.Nil(t, cp[3].FamilyID)

	// Child status from the fixture birth dates and ages.
	assert.True(t, hmis[0].Child)
	assert.True(t, hmis[1].Adult)
	assert.True(t, hmis[2].Child)
	assert.True(t, cp[0].Adult)
	assert.True(t, cp[1].Child)
	assert.True(t, cp[2].Adult)
	assert.True(t, cp[3].Adult, "missing age counts as adult")

	// Household 7 holds a child and an adult, so its members form a family.
	assert.True(t, hmis[0].Family)
	assert.True(t, hmis[1].Family)
	assert.False(t, hmis[2].Family, "child without a household is not a family")
	assert.True(t, cp[0].Family)
	assert.True(t, cp[1].Family)
	assert.False(t, cp[2].Family)
	assert.False(t, cp[3].Family)
	assert.True(t, cp[3].WithAdult, "clientless case rows still group by case id")

	meta := result.Metadata
	assert.Equal(t, "full-pipeline", meta.RunID)
	assert.Equal(t, 3, meta.Stats.HMISRecords)
	assert.Equal(t, 4, meta.Stats.CPRecords)
	assert.Equal(t, 6, meta.Stats.Vertices)
	assert.Equal(t, 2, meta.Stats.PersonComponents)
	assert.Equal(t, 2, meta.Stats.FamilyComponents)
	assert.Equal(t, 2, meta.Stats.CrossMatches)
	assert.Contains(t, result.Summary(), "3 HMIS")
}

func TestCleanDeterministic(t *testing.T) {
	first, err := homelessness.Clean(context.Background(),
		homelessness.WithDataDir(testDataDir),
		homelessness.WithRunID("repeat"),
		homelessness.WithLogger(logging.NewNopLogger()),
	)
	require.NoError(t, err)

	second, err := homelessness.Clean(context.Background(),
		homelessness.WithDataDir(testDataDir),
		homelessness.WithRunID("repeat"),
		homelessness.WithLogger(logging.NewNopLogger()),
	)
	require.NoError(t, err)

	assert.Equal(t, first.HMIS, second.HMIS)
	assert.Equal(t, first.CP, second.CP)
}

func TestCleanManifest(t *testing.T) {
	abs, err := filepath.Abs(testDataDir)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "dataset.yaml")
	manifest := "data_dir: " + abs + "\nworkers: 2\n"
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0o644))

	result, err := homelessness.Clean(context.Background(),
		homelessness.WithManifest(path),
		homelessness.WithLogger(logging.NewNopLogger()),
	)
	require.NoError(t, err)
	assert.Len(t, result.HMIS, 3)

	// An explicit data dir wins over the manifest.
	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("data_dir: /does/not/exist\n"), 0o644))

	result, err = homelessness.Clean(context.Background(),
		homelessness.WithManifest(bad),
		homelessness.WithDataDir(testDataDir),
		homelessness.WithLogger(logging.NewNopLogger()),
	)
	require.NoError(t, err)
	assert.Len(t, result.HMIS, 3)
}

func TestLoadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.yaml")
	content := "data_dir: /var/data\nencoding: windows-1252\nworkers: 4\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	m, err := homelessness.LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/data", m.DataDir)
	assert.Equal(t, "windows-1252", m.Encoding)
	assert.Equal(t, 4, m.Workers)

	_, err = homelessness.LoadManifest(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	var ioErr *errors.IOError
	assert.ErrorAs(t, err, &ioErr)
}

func TestCleanMissingData(t *testing.T) {
	_, err := homelessness.Clean(context.Background(),
		homelessness.WithDataDir(filepath.Join(t.TempDir(), "empty")),
		homelessness.WithLogger(logging.NewNopLogger()),
	)
	require.Error(t, err)

	var ioErr *errors.IOError
	assert.ErrorAs(t, err, &ioErr)
}

func TestCleanOptionValidation(t *testing.T) {
	_, err := homelessness.Clean(context.Background(), homelessness.WithDataDir(""))
	assert.True(t, errors.IsValidationError(err))

	_, err = homelessness.Clean(context.Background(), homelessness.WithWorkers(0))
	assert.True(t, errors.IsValidationError(err))

	_, err = homelessness.Clean(context.Background(), homelessness.WithRunID(""))
	assert.True(t, errors.IsValidationError(err))

	_, err = homelessness.Clean(context.Background(),
		homelessness.WithDataDir(testDataDir),
		homelessness.WithEncoding("ebcdic"),
	)
	assert.Error(t, err)
}
