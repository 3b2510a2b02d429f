// Package errors provides structured error types for svgbanner.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the function, the HTTP server and the CLI
//   - Machine-readable error codes for logs and metrics
//   - User-friendly messages for the error image
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Configuration validation failures
//   - *_FAILED: Failures in one rendering stage
//   - INTERNAL_*: Unexpected internal errors, including recovered panics
//
// Request parameters never produce errors; they fall back to defaults.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidProfile, "unknown profile: %s", name)
//	if errors.Is(err, errors.ErrCodeInvalidProfile) {
//	    // Handle configuration error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeEncodeFailed, origErr, "encode %s", format)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration errors
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"
	ErrCodeInvalidProfile Code = "INVALID_PROFILE"

	// Rendering stage errors
	ErrCodeRenderFailed   Code = "RENDER_FAILED"
	ErrCodeAssemblyFailed Code = "ASSEMBLY_FAILED"
	ErrCodeEncodeFailed   Code = "ENCODE_FAILED"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED_FORMAT"
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

// UserMessage returns the message shown inside the error image.
// For *Error types it joins the message with its cause, without the code prefix.
// For other errors it returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return e.Message + ": " + UserMessage(e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// PanicError carries a value recovered from a panic during rendering.
type PanicError struct {
	Value any
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	if err, ok := e.Value.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(e.Value)
}

// Code returns the error code for this error type.
func (e *PanicError) Code() Code {
	return ErrCodeInternal
}

// Recovered converts a recovered panic value into an error.
// It returns nil when v is nil.
func Recovered(v any) error {
	if v == nil {
		return nil
	}
	return Wrap(ErrCodeInternal, &PanicError{Value: v}, "unexpected failure")
}
