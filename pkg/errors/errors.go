// Package errors provides custom error types for the paylens system.
// Every ingestion and update entry point reports failures through these
// types so callers can check them programmatically while still getting a
// human-readable message to surface to the end user.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the paylens system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingColumns indicates required spreadsheet columns are absent
	ErrMissingColumns = errors.New("missing required columns")

	// ErrUnparseableGrades indicates no grade extraction pattern matched
	ErrUnparseableGrades = errors.New("unparseable grades")

	// ErrEmptyAfterFiltering indicates every row was dropped by grade filtering
	ErrEmptyAfterFiltering = errors.New("no rows remaining after filtering")

	// ErrUnparseableTotals indicates the TOTAL column yields no numeric values
	ErrUnparseableTotals = errors.New("unparseable totals")

	// ErrUndecodable indicates no spreadsheet engine could read the input
	ErrUndecodable = errors.New("undecodable spreadsheet")
)

// MissingColumnsError reports every required logical column that had no
// case/space-insensitive match in the uploaded header row.
type MissingColumnsError struct {
	Columns []string
}

// Error implements the error interface
func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}

// Is implements errors.Is support
func (e *MissingColumnsError) Is(target error) bool {
	return target == ErrMissingColumns
}

// NewMissingColumnsError creates a new MissingColumnsError
func NewMissingColumnsError(columns []string) *MissingColumnsError {
	return &MissingColumnsError{Columns: columns}
}

// UnparseableGradesError reports that no extraction pattern matched any
// value in the GRADE column. Sample carries a few raw values for diagnostics.
type UnparseableGradesError struct {
	Sample []string
}

// Error implements the error interface
func (e *UnparseableGradesError) Error() string {
	return fmt.Sprintf("could not extract numeric grade values, sample values: %v", e.Sample)
}

// Is implements errors.Is support
func (e *UnparseableGradesError) Is(target error) bool {
	return target == ErrUnparseableGrades
}

// NewUnparseableGradesError creates a new UnparseableGradesError
func NewUnparseableGradesError(sample []string) *UnparseableGradesError {
	return &UnparseableGradesError{Sample: sample}
}

// EmptyAfterFilteringError reports that grade filtering removed every row.
type EmptyAfterFilteringError struct {
	OriginalRows int
}

// Error implements the error interface
func (e *EmptyAfterFilteringError) Error() string {
	return fmt.Sprintf("no valid rows remaining after filtering invalid grades, started with %d rows", e.OriginalRows)
}

// Is implements errors.Is support
func (e *EmptyAfterFilteringError) Is(target error) bool {
	return target == ErrEmptyAfterFiltering
}

// NewEmptyAfterFilteringError creates a new EmptyAfterFilteringError
func NewEmptyAfterFilteringError(originalRows int) *EmptyAfterFilteringError {
	return &EmptyAfterFilteringError{OriginalRows: originalRows}
}

// UnparseableTotalsError reports that the TOTAL column produced no numeric
// values after currency coercion.
type UnparseableTotalsError struct {
	Sample []string
}

// Error implements the error interface
func (e *UnparseableTotalsError) Error() string {
	return fmt.Sprintf("could not convert TOTAL column to numeric values, sample values: %v", e.Sample)
}

// Is implements errors.Is support
func (e *UnparseableTotalsError) Is(target error) bool {
	return target == ErrUnparseableTotals
}

// NewUnparseableTotalsError creates a new UnparseableTotalsError
func NewUnparseableTotalsError(sample []string) *UnparseableTotalsError {
	return &UnparseableTotalsError{Sample: sample}
}

// DecodeError reports that every spreadsheet decode engine failed for an
// uploaded file. Engines maps engine name to its failure.
type DecodeError struct {
	File    string
	Engines map[string]error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	parts := make([]string, 0, len(e.Engines))
	for name, err := range e.Engines {
		parts = append(parts, fmt.Sprintf("%s: %v", name, err))
	}
	return fmt.Sprintf("failed to read spreadsheet %s with any engine (%s)", e.File, strings.Join(parts, "; "))
}

// Is implements errors.Is support
func (e *DecodeError) Is(target error) bool {
	return target == ErrUndecodable
}

// NewDecodeError creates a new DecodeError
func NewDecodeError(file string, engines map[string]error) *DecodeError {
	return &DecodeError{File: file, Engines: engines}
}

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "yaml", "csv", "xlsx", etc.
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{Format: format, File: file, Message: message, Err: err}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "open", "close"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{Operation: operation, Path: path, Message: message, Err: err}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsIngestFailure checks if an error is one of the recoverable ingest
// failures (missing columns, unparseable grades or totals, empty set).
func IsIngestFailure(err error) bool {
	return errors.Is(err, ErrMissingColumns) ||
		errors.Is(err, ErrUnparseableGrades) ||
		errors.Is(err, ErrEmptyAfterFiltering) ||
		errors.Is(err, ErrUnparseableTotals)
}

// Helper wrapping functions for common patterns

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}
