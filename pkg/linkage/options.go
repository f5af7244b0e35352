package linkage

import (
	"github.com/bayesimpact/sf-homelessness/pkg/constants"
	"github.com/bayesimpact/sf-homelessness/pkg/errors"
)

// options configures a Linker.
type options struct {
	workers int
	runID   string
}

func defaultOptions() *options {
	return &options{
		workers: constants.MaxConcurrentMaterializers,
	}
}

// Option is a function that configures a Linker.
type Option func(*options) error

func (options *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	return options, nil
}

// newOptions returns linker options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithWorkers sets how many label materializers run concurrently.
func WithWorkers(n int) Option {
	return func(o *options) error {
		if n < 1 {
			return &errors.ValidationError{
				Field:   "workers",
				Value:   n,
				Message: "must be at least 1",
			}
		}
		o.workers = n
		return nil
	}
}

// WithRunID pins the run identifier instead of generating one. Useful for
// reproducible logs and tests.
func WithRunID(id string) Option {
	return func(o *options) error {
		if id == "" {
			return &errors.ValidationError{
				Field:   "run_id",
				Message: "cannot be empty",
			}
		}
		o.runID = id
		return nil
	}
}
