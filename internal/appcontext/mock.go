package appcontext

import (
	"github.com/rs/zerolog"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
type Mock struct {
	LoggerFunc    func() *zerolog.Logger
	DataDirFunc   func() string
	OutputDirFunc func() string
	EncodingFunc  func() string
	WorkersFunc   func() int
	QuietFunc     func() bool
	NoColorFunc   func() bool
	VersionFunc   func() string
	CommitFunc    func() string
	DateFunc      func() string
	BuiltByFunc   func() string
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// DataDir returns the data directory using the mock function or "data".
func (m *Mock) DataDir() string {
	if m.DataDirFunc != nil {
		return m.DataDirFunc()
	}
	return "data"
}

// OutputDir returns the output directory using the mock function or "output".
func (m *Mock) OutputDir() string {
	if m.OutputDirFunc != nil {
		return m.OutputDirFunc()
	}
	return "output"
}

// Encoding returns the encoding using the mock function or empty.
func (m *Mock) Encoding() string {
	if m.EncodingFunc != nil {
		return m.EncodingFunc()
	}
	return ""
}

// Workers returns the worker count using the mock function or zero.
func (m *Mock) Workers() int {
	if m.WorkersFunc != nil {
		return m.WorkersFunc()
	}
	return 0
}

// Quiet reports quiet mode using the mock function or false.
func (m *Mock) Quiet() bool {
	if m.QuietFunc != nil {
		return m.QuietFunc()
	}
	return false
}

// NoColor reports color suppression using the mock function or true.
// Tests should not produce colored output by default.
func (m *Mock) NoColor() bool {
	if m.NoColorFunc != nil {
		return m.NoColorFunc()
	}
	return true
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
