package homelessness

import (
	"github.com/rs/zerolog"

	"github.com/bayesimpact/sf-homelessness/pkg/errors"
)

// options holds the configured pipeline settings.
type options struct {
	dataDir  string
	manifest string
	encoding string
	workers  int
	runID    string
	logger   *zerolog.Logger
}

func defaultOptions() *options {
	return &options{
		dataDir: "data",
	}
}

// newOptions applies the given options over the defaults, then fills any
// still-unset fields from the manifest file when one was configured.
// Explicit options win over manifest values.
func newOptions(opts ...Option) (*options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	if o.manifest == "" {
		return o, nil
	}

	m, err := LoadManifest(o.manifest)
	if err != nil {
		return nil, err
	}
	if o.dataDir == defaultOptions().dataDir && m.DataDir != "" {
		o.dataDir = m.DataDir
	}
	if o.encoding == "" {
		o.encoding = m.Encoding
	}
	if o.workers == 0 {
		o.workers = m.Workers
	}
	return o, nil
}

// Option configures the pipeline.
type Option func(*options) error

// WithDataDir sets the directory holding the hmis/, connecting_point/, and
// matching/ source subdirectories.
func WithDataDir(dir string) Option {
	return func(o *options) error {
		if dir == "" {
			return errors.NewValidationError("dataDir", dir, "must not be empty")
		}
		o.dataDir = dir
		return nil
	}
}

// WithManifest points the pipeline at a YAML manifest describing the
// dataset. Values given through other options take precedence.
func WithManifest(path string) Option {
	return func(o *options) error {
		if path == "" {
			return errors.NewValidationError("manifest", path, "must not be empty")
		}
		o.manifest = path
		return nil
	}
}

// WithEncoding sets the character encoding of the source files, for
// example "windows-1252". The default is UTF-8.
func WithEncoding(name string) Option {
	return func(o *options) error {
		o.encoding = name
		return nil
	}
}

// WithWorkers caps the number of concurrent label materializations.
func WithWorkers(n int) Option {
	return func(o *options) error {
		if n < 1 {
			return errors.NewValidationError("workers", n, "must be at least 1")
		}
		o.workers = n
		return nil
	}
}

// WithRunID pins the run identifier instead of generating one. Useful for
// reproducing a run in logs and stored output.
func WithRunID(id string) Option {
	return func(o *options) error {
		if id == "" {
			return errors.NewValidationError("runID", id, "must not be empty")
		}
		o.runID = id
		return nil
	}
}

// WithLogger routes pipeline logging through the given logger instead of
// the package default.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}
