// Package errors provides custom error types for the resolution pipeline.
// These errors enable programmatic error checking and keep the distinction
// between tolerated data-quality noise (dropped rows) and fatal defects
// (aborted runs) explicit throughout the application.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the resolution pipeline.
var (
	// ErrInvalidInput indicates that provided input was invalid.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingColumn indicates a required column is absent from an input table.
	ErrMissingColumn = errors.New("missing column")

	// ErrBuilderDefect indicates the evidence graph or its labeling violated an
	// internal invariant. Runs must abort rather than emit partial labels.
	ErrBuilderDefect = errors.New("graph builder defect")
)

// ValidationError represents a validation failure.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// MissingColumnError reports a required column absent from an input table.
// Raised by the loader before any graph work begins.
type MissingColumnError struct {
	Table  string
	Column string
}

// Error implements the error interface.
func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("table %s is missing required column %q", e.Table, e.Column)
}

// Is implements errors.Is support.
func (e *MissingColumnError) Is(target error) bool {
	return target == ErrMissingColumn
}

// NewMissingColumnError creates a new MissingColumnError.
func NewMissingColumnError(table, column string) *MissingColumnError {
	return &MissingColumnError{Table: table, Column: column}
}

// BuildError reports a violated invariant in graph construction or label
// assignment: a raw identifier claimed by more than one component, or a record
// identifier absent from the graph's vertex set.
type BuildError struct {
	Stage   string // "person" or "family"
	Source  string // source tag the defect was observed under
	ID      int64  // offending raw identifier, if known
	Message string
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("%s graph defect for %s id %d: %s", e.Stage, e.Source, e.ID, e.Message)
	}
	return fmt.Sprintf("%s graph defect: %s", e.Stage, e.Message)
}

// Is implements errors.Is support.
func (e *BuildError) Is(target error) bool {
	return target == ErrBuilderDefect
}

// NewBuildError creates a new BuildError.
func NewBuildError(stage, source string, id int64, message string) *BuildError {
	return &BuildError{Stage: stage, Source: source, ID: id, Message: message}
}

// ParseError represents an error when parsing input data.
type ParseError struct {
	Format  string // "csv", "yaml"
	File    string
	Line    int
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("parse error in %s at %s:%d: %s", e.Format, e.File, e.Line, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError.
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations.
type IOError struct {
	Operation string // "read", "write", "create", "open", "close"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap.
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError.
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError.
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsMissingColumn checks if an error reports a missing input column.
func IsMissingColumn(err error) bool {
	return errors.Is(err, ErrMissingColumn)
}

// IsBuilderDefect checks if an error reports a violated builder invariant.
func IsBuilderDefect(err error) bool {
	return errors.Is(err, ErrBuilderDefect)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError.
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError.
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}
