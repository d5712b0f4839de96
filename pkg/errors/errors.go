// Package errors provides structured error types for infiniscroll.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the engine, scenario runner and CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Codes fall into three groups:
//   - Programmer errors (UNREGISTERED_TYPE, DELEGATE_FORBIDDEN): a wiring
//     mistake. The engine aborts the current pass and returns the error.
//   - INVALID_*: configuration, scenario or delegate-supplied values that
//     cannot be laid out.
//   - NOT_FOUND_* and INTERNAL_*: file lookups and unexpected failures.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnregisteredType, "no factory for %q", key)
//	if errors.Is(err, errors.ErrCodeUnregisteredType) {
//	    // Register the type before tiling
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
	// Programmer errors
	ErrCodeUnregisteredType  Code = "UNREGISTERED_TYPE"
	ErrCodeDelegateForbidden Code = "DELEGATE_FORBIDDEN"

	// Input validation errors
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidConfig    Code = "INVALID_CONFIG"
	ErrCodeInvalidSize      Code = "INVALID_SIZE"
	ErrCodeInvalidScenario  Code = "INVALID_SCENARIO"
	ErrCodeInvalidDirection Code = "INVALID_DIRECTION"
	ErrCodeInvalidPath      Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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

// IsProgrammerError reports whether err signals a wiring mistake rather than
// bad input: an unregistered cell type or a forbidden delegate rebinding.
func IsProgrammerError(err error) bool {
	switch GetCode(err) {
	case ErrCodeUnregisteredType, ErrCodeDelegateForbidden:
		return true
	}
	return false
}
