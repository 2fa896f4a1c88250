// Package errors provides the coded error types used by pixfx.
//
// Every failure the tool can report falls into one of a small set of
// categories. The CLI prints the user message and exits with status 1
// regardless of the category; the codes exist so callers and tests can tell
// a validation failure from an I/O failure without matching strings.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "invalid number of cut values: got %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // argument problem, nothing was read or written
//	}
//
//	err = errors.Wrap(errors.ErrCodeDecode, cause, "failed to open %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code names the category of a failure.
type Code string

// Error codes for the failure categories of a run.
const (
	// Argument validation, raised before any file is touched.
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeUnsupportedFormat Code = "UNSUPPORTED_FORMAT"

	// Image processing failures.
	ErrCodeDecode          Code = "DECODE_FAILED"
	ErrCodeCropOutOfBounds Code = "CROP_OUT_OF_BOUNDS"
	ErrCodeEncode          Code = "ENCODE_FAILED"
)

// Usage reports whether c describes a mistake in the command line itself,
// one the user fixes by changing arguments rather than files.
func (c Code) Usage() bool {
	return c == ErrCodeInvalidInput || c == ErrCodeUnsupportedFormat
}

// Error is a failure tagged with a Code. Cause is nil for failures detected
// by pixfx itself.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.text()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// text is the message without the code, followed by the cause if any.
func (e *Error) text() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

// New returns an Error with a formatted message and no cause.
func New(code Code, format string, args ...any) *Error {
	return Wrap(code, nil, format, args...)
}

// Wrap returns an Error with a formatted message around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// GetCode returns the code of the first *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Is reports whether err carries code.
func Is(err error, code Code) bool {
	return code != "" && GetCode(err) == code
}

// UserMessage returns the line shown on the terminal: the message and cause
// of a coded error without its code, or err.Error() for anything else.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.text()
	}
	return err.Error()
}
