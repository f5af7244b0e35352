// Package appcontext provides the shared application context interface
// used by all commands. This eliminates interface duplication across
// command packages and provides a single source of truth for app dependencies.
package appcontext

import (
	"github.com/rs/zerolog"
)

// Interface defines the application context interface that commands need.
// The App struct from cmd/linkage/app automatically implements this interface,
// providing dependency injection for commands while maintaining testability.
//
// Commands should accept this interface rather than the concrete App type,
// allowing for easier testing with mock implementations.
type Interface interface {
	// Logger returns the configured logger instance.
	// Commands should use this for all logging operations.
	Logger() *zerolog.Logger

	// DataDir returns the configured data drop directory. Commands use it
	// as the default when no --data-dir flag is given.
	DataDir() string

	// OutputDir returns the configured directory for exported tables.
	OutputDir() string

	// Encoding returns the configured source file encoding. Empty means
	// UTF-8.
	Encoding() string

	// Workers returns the configured label materialization worker count.
	// Zero means the library default.
	Workers() int

	// Quiet reports whether minimal output was requested.
	Quiet() bool

	// NoColor reports whether colored output is disabled.
	NoColor() bool

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
