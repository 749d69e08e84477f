// Package parsererror defines the typed errors returned while reading
// statement files. Format and extraction errors abort a closing run; parse
// errors are only surfaced when strict amount parsing is enabled.
package parsererror

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is matched by every InvalidFormatError through errors.Is.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ParseError represents a cell value that could not be converted.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Parser == "" {
		return fmt.Sprintf("failed to parse %s='%s': %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents an input that is well formed but unusable.
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}

// InvalidFormatError is returned when a file cannot be read as any
// supported tabular format.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// Is makes errors.Is(err, ErrUnsupportedFormat) hold for format errors.
func (e *InvalidFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// DataExtractionError is returned when the header was located but a column
// the adapter needs is missing.
type DataExtractionError struct {
	FilePath  string
	FieldName string
	Reason    string
}

func (e *DataExtractionError) Error() string {
	return fmt.Sprintf("data extraction failed in file '%s' for field '%s': %s",
		e.FilePath, e.FieldName, e.Reason)
}

// CategorizationError wraps a failure of a categorization strategy. The
// categorizer logs it and moves on to the next strategy.
type CategorizationError struct {
	Description string
	Strategy    string
	Err         error
}

func (e *CategorizationError) Error() string {
	return fmt.Sprintf("categorization failed for '%s' using %s: %v",
		e.Description, e.Strategy, e.Err)
}

func (e *CategorizationError) Unwrap() error {
	return e.Err
}
