// Package errors provides structured error types for floatzone.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the libraries and the CLI
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// The placement libraries treat invalid input as a programming error and
// panic with an *Error before mutating anything. Callers that accept input
// from outside (scenario files, flags) run the same checks through the
// Validate* helpers first and get the error back instead.
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - FILE_NOT_FOUND: Missing scenario files
//   - CORRUPT_BANDS, MISMATCH: Consistency checks that failed
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidSize, "inline size %v is negative", w)
//	if errors.Is(err, errors.ErrCodeInvalidSize) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidScenario, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidSize     Code = "INVALID_SIZE"
	ErrCodeInvalidCeiling  Code = "INVALID_CEILING"
	ErrCodeFloatTooWide    Code = "FLOAT_TOO_WIDE"
	ErrCodeInvalidSide     Code = "INVALID_SIDE"
	ErrCodeInvalidScenario Code = "INVALID_SCENARIO"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Consistency errors
	ErrCodeCorruptBands Code = "CORRUPT_BANDS"
	ErrCodeMismatch     Code = "MISMATCH"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Must panics with err when it is non-nil. The placement libraries use it to
// turn a failed precondition into a fail-fast crash carrying the same *Error
// a validating caller would have received.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}
