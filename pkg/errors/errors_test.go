package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/bayesimpact/sf-homelessness/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "data_dir",
			Message: "cannot be empty",
		}
		assert.Equal(t, "validation failed for field data_dir: cannot be empty", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Message: "invalid configuration",
		}
		assert.Equal(t, "validation failed: invalid configuration", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewValidationError("encoding", "latin-5", "unsupported encoding")
		assert.Contains(t, err.Error(), "encoding")
		assert.Contains(t, err.Error(), "unsupported encoding")
	})
}

func TestMissingColumnError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.MissingColumnError{
			Table:  "hmis/program.csv",
			Column: "Subject Unique Identifier",
		}
		assert.Equal(t, `table hmis/program.csv is missing required column "Subject Unique Identifier"`, err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrMissingColumn))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewMissingColumnError("cp/case.csv", "Caseid")
		assert.Contains(t, err.Error(), "cp/case.csv")
		assert.Contains(t, err.Error(), "Caseid")
		assert.True(t, pkgerrors.IsMissingColumn(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewMissingColumnError("hmis/client.csv", "DOB")
		wrapped := errors.Join(errors.New("load failed"), base)
		assert.True(t, pkgerrors.IsMissingColumn(wrapped))
	})
}

func TestBuildError(t *testing.T) {
	t.Run("with id", func(t *testing.T) {
		err := &pkgerrors.BuildError{
			Stage:   "person",
			Source:  "h",
			ID:      4212,
			Message: "identifier not found in any component",
		}
		assert.Equal(t, "person graph defect for h id 4212: identifier not found in any component", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrBuilderDefect))
	})

	t.Run("without id", func(t *testing.T) {
		err := &pkgerrors.BuildError{
			Stage:   "family",
			Message: "duplicate label for component",
		}
		assert.Equal(t, "family graph defect: duplicate label for component", err.Error())
		assert.True(t, pkgerrors.IsBuilderDefect(err))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewBuildError("person", "c", 17, "identifier claimed twice")
		assert.Contains(t, err.Error(), "person")
		assert.Contains(t, err.Error(), "17")
		assert.Contains(t, err.Error(), "identifier claimed twice")
	})
}

func TestParseError(t *testing.T) {
	t.Run("with file and line", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "csv",
			File:    "hmis/program.csv",
			Line:    10,
			Message: "unexpected field count",
		}
		assert.Contains(t, err.Error(), "csv")
		assert.Contains(t, err.Error(), "hmis/program.csv:10")
		assert.Contains(t, err.Error(), "unexpected field count")
	})

	t.Run("with file only", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "yaml",
			File:    "linkage.yaml",
			Message: "invalid indentation",
		}
		assert.Contains(t, err.Error(), "yaml")
		assert.Contains(t, err.Error(), "linkage.yaml")
		assert.Contains(t, err.Error(), "invalid indentation")
	})

	t.Run("format only", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "date",
			Message: "unrecognized layout",
		}
		assert.Contains(t, err.Error(), "date parse error")
		assert.Contains(t, err.Error(), "unrecognized layout")
	})

	t.Run("constructor and wrap", func(t *testing.T) {
		baseErr := errors.New("EOF")
		err := pkgerrors.NewParseError("csv", "cp/client.csv", "unexpected end", baseErr)
		assert.Contains(t, err.Error(), "csv")
		assert.Equal(t, baseErr, err.Unwrap())

		wrapped := pkgerrors.WrapParse("csv", "cp/case.csv", baseErr)
		parseErr, ok := wrapped.(*pkgerrors.ParseError)
		require.True(t, ok)
		assert.Equal(t, "csv", parseErr.Format)
		assert.Equal(t, "cp/case.csv", parseErr.File)
	})

	t.Run("wrap nil", func(t *testing.T) {
		assert.Nil(t, pkgerrors.WrapParse("csv", "data.csv", nil))
	})
}

func TestIOError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.IOError{
			Operation: "read",
			Path:      "/data/hmis/client.csv",
			Message:   "permission denied",
			Err:       errors.New("permission denied"),
		}
		assert.Contains(t, err.Error(), "read")
		assert.Contains(t, err.Error(), "/data/hmis/client.csv")
		assert.Contains(t, err.Error(), "permission denied")
	})

	t.Run("unwrap", func(t *testing.T) {
		baseErr := errors.New("disk full")
		err := pkgerrors.NewIOError("write", "/data/output.csv", baseErr)
		assert.Equal(t, baseErr, err.Unwrap())
	})

	t.Run("wrap helper", func(t *testing.T) {
		baseErr := errors.New("network error")
		err := pkgerrors.WrapIO("download", "/tmp/matches.csv", baseErr)
		ioErr, ok := err.(*pkgerrors.IOError)
		require.True(t, ok)
		assert.Equal(t, "download", ioErr.Operation)
		assert.Equal(t, "/tmp/matches.csv", ioErr.Path)
	})

	t.Run("wrap nil", func(t *testing.T) {
		assert.Nil(t, pkgerrors.WrapIO("read", "/tmp/none.csv", nil))
	})
}

func TestConfigError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.ConfigError{
			Component: "loader",
			Message:   "data_dir: no such directory",
		}
		assert.Contains(t, err.Error(), "loader")
		assert.Contains(t, err.Error(), "data_dir")
		assert.Contains(t, err.Error(), "no such directory")
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewConfigError("export", "output path cannot be empty", nil)
		assert.Contains(t, err.Error(), "export")
		assert.Contains(t, err.Error(), "output path")
		assert.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("unwrap", func(t *testing.T) {
		baseErr := errors.New("yaml: line 3")
		err := pkgerrors.NewConfigError("manifest", "parse failed", baseErr)
		assert.Equal(t, baseErr, err.Unwrap())
	})
}
