package cli

import (
	"encoding/json"
	"io"

	"github.com/barg-dev/barg/internal/errors"
)

// Machine mode flag - when true, outputs JSON and suppresses human-friendly decorations
var machineMode bool

// MachineMode returns true if machine-readable output is enabled
func MachineMode() bool {
	return machineMode
}

// JSONEnvelope wraps command output in a consistent structure for machine parsing.
// All --json output uses this envelope.
type JSONEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *JSONError  `json:"error,omitempty"`
}

// JSONError provides structured error information for machine parsing.
type JSONError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Error codes for machine-readable output.
const (
	ErrCodePropertyNotFound = "PROPERTY_NOT_FOUND"
	ErrCodeInvalidValue     = "INVALID_VALUE"
	ErrCodeDecodeFailed     = "DECODE_FAILED"
	ErrCodeTerminal         = "TERMINAL"
	ErrCodeUsage            = "USAGE"
	ErrCodeUnknown          = "UNKNOWN"
)

// WriteJSONSuccess writes a successful response with data to the writer.
func WriteJSONSuccess(w io.Writer, data interface{}) error {
	env := JSONEnvelope{
		Success: true,
		Data:    data,
	}
	return writeJSONEnvelope(w, env)
}

// WriteJSONFromError converts a Go error to a JSON error response.
func WriteJSONFromError(w io.Writer, err error) error {
	env := JSONEnvelope{
		Success: false,
		Error:   ErrorToJSON(err),
	}
	return writeJSONEnvelope(w, env)
}

// writeJSONEnvelope writes the envelope with consistent formatting.
func writeJSONEnvelope(w io.Writer, env JSONEnvelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}

// ErrorToJSON converts a Go error to a JSONError with appropriate code mapping.
func ErrorToJSON(err error) *JSONError {
	if err == nil {
		return nil
	}

	// Check if it's our structured error type
	if bargErr, ok := err.(*errors.Error); ok {
		return &JSONError{
			Code:       mapErrorCode(bargErr.Code),
			Message:    bargErr.Message,
			Suggestion: bargErr.Suggestion,
		}
	}

	// Generic error
	return &JSONError{
		Code:    ErrCodeUnknown,
		Message: err.Error(),
	}
}

// mapErrorCode maps internal error codes to machine-readable codes.
func mapErrorCode(internalCode string) string {
	switch internalCode {
	case errors.ErrField:
		return ErrCodePropertyNotFound
	case errors.ErrInput:
		return ErrCodeInvalidValue
	case errors.ErrDecode:
		return ErrCodeDecodeFailed
	case errors.ErrTerm:
		return ErrCodeTerminal
	case errors.ErrUsage:
		return ErrCodeUsage
	}
	return ErrCodeUnknown
}
