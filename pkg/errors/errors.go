// Package errors defines the coded errors shared by the layout engine, the
// pipeline, the CLI and the HTTP API.
//
// Every failure that reaches a user carries a [Code]. INVALID_* codes mean
// the caller's input was rejected before any geometry was computed, so no
// partial result exists; the API maps them to 400. NUMERIC means valid input
// produced geometry that cannot be represented. Everything else is a backend
// or internal failure.
//
//	err := errors.New(errors.ErrCodeInvalidEdge, "edge %d: vertex %d out of range", i, v)
//	if errors.IsInvalidInput(err) {
//	    // report to the caller
//	}
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code is a machine-readable error category.
type Code string

const (
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidEdge     Code = "INVALID_EDGE"
	ErrCodeInvalidRadius   Code = "INVALID_RADIUS"
	ErrCodeInvalidPosition Code = "INVALID_POSITION"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidPath     Code = "INVALID_PATH"

	// ErrCodeNumeric marks a geometric degeneracy that could not be clamped.
	ErrCodeNumeric Code = "NUMERIC"

	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	ErrCodeCache   Code = "CACHE_ERROR"
	ErrCodeTimeout Code = "TIMEOUT"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Invalid reports whether c is one of the INVALID_* input codes.
func (c Code) Invalid() bool {
	return strings.HasPrefix(string(c), "INVALID_")
}

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an Error with a formatted message around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode returns the code of the outermost *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without the code prefix or cause. Errors
// that are not an *Error are returned as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsInvalidInput reports whether err carries an INVALID_* code.
func IsInvalidInput(err error) bool {
	return GetCode(err).Invalid()
}
