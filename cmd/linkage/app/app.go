// Package app provides the application context and dependency management
// for the linkage CLI. It centralizes configuration, logging, and version
// information so commands receive their dependencies instead of reaching
// for globals.
package app

import (
	"github.com/rs/zerolog"

	"github.com/bayesimpact/sf-homelessness/pkg/errors"
)

// App represents the linkage application with all its dependencies.
// It provides a centralized place for configuration and logging,
// following the dependency injection pattern.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger
}

// New creates a new App instance with the given version information.
// The app is initialized with configuration loaded from the environment
// that can be customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		return nil, errors.NewConfigError("app", "load configuration", err)
	}
	app.config = config

	// Initialize logger
	logger := NewLogger(config)
	app.logger = &logger

	// Apply any custom options
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// DataDir returns the configured data drop directory.
func (a *App) DataDir() string {
	return a.config.DataDir
}

// OutputDir returns the configured directory for exported tables.
func (a *App) OutputDir() string {
	return a.config.OutputDir
}

// Encoding returns the configured source file encoding.
func (a *App) Encoding() string {
	return a.config.Encoding
}

// Workers returns the configured label materialization worker count.
func (a *App) Workers() int {
	return a.config.Workers
}

// Quiet reports whether minimal output was requested.
func (a *App) Quiet() bool {
	return a.config.Quiet
}

// NoColor reports whether colored output is disabled.
func (a *App) NoColor() bool {
	return a.config.NoColor
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}
