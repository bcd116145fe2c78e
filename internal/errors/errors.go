package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing errors
const (
	ErrField  = "FIELD"  // graph field missing from the record schema
	ErrInput  = "INPUT"  // bad record values (e.g. non-numeric graph field)
	ErrDecode = "DECODE" // input could not be parsed into records
	ErrTerm   = "TERM"   // terminal capability problems
	ErrUsage  = "USAGE"  // invalid flag combinations or arguments
)

// Error represents a structured error with code, message, suggestion, and optional cause.
// Rendered as:
//
//	✗ <What failed>
//
//	  <Why it failed - technical details>
//
//	  <How to fix it - actionable steps>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a new structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap wraps an existing error with a message, defaulting to ErrDecode code.
func Wrap(err error, message string) *Error {
	return &Error{
		Code:    ErrDecode,
		Message: message,
		Cause:   err,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// NewPropertyNotFound creates the error for a graph field that no record carries.
func NewPropertyNotFound(field string) *Error {
	return &Error{
		Code:       ErrField,
		Message:    fmt.Sprintf("Property '%s' not found in the input records", field),
		Suggestion: "Check the field name against the record keys (field names are case-sensitive)",
	}
}

// Error implements the error interface with formatted multi-line output.
func (e *Error) Error() string {
	var b strings.Builder

	// First line: failure symbol + main message
	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	// Include cause if present (why it failed)
	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	// Include suggestion if present (how to fix)
	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var bargErr *Error
	if errors.As(err, &bargErr) {
		return bargErr.Code == code
	}
	return false
}
