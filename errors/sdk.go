// Package errors provides structured error handling for the Horcrux
// split/bind engine.
//
// It defines SDKError, a structured error type carrying a stable error
// code for programmatic handling, a human-readable message, and an
// optional wrapped cause, plus a set of predefined sentinel errors for
// every failure category the engine can produce (configuration, input,
// format, set validation, cryptographic, and I/O).
//
// # Sentinel errors and cloning
//
// Predefined errors (e.g. ErrInsufficientShards) are pointers to shared
// global instances. Comparisons should use errors.Is(), never direct
// pointer or field comparison. If a message needs to be customized with
// call-specific context, Clone() first:
//
//	failErr := herrors.ErrInsufficientShards.Clone()
//	failErr.Msg = fmt.Sprintf("have %d, need %d", have, need)
//	return failErr
//
// Wrap() is always safe to call directly since it returns a new
// instance:
//
//	return herrors.ErrFSFileOpenFailed.Wrap(err)
package errors

import (
	"errors"
	"fmt"
)

// SDKError is a structured error carrying a code for programmatic
// handling, a human-readable message, and an optional wrapped cause.
type SDKError struct {
	// Code is the stable error code for this error kind.
	Code ErrorCode

	// Msg is the human-readable message.
	Msg string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// New creates an SDKError from the given code, message, and optional
// wrapped error. Prefer a predefined sentinel and Clone/Wrap over
// calling New directly.
func New(code ErrorCode, msg string, wrapped error) *SDKError {
	return &SDKError{Code: code, Msg: msg, Wrapped: wrapped}
}

// Error implements the error interface.
func (e *SDKError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Msg, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Msg)
}

// Unwrap returns the wrapped cause, enabling errors.Is/As chain
// traversal.
func (e *SDKError) Unwrap() error {
	return e.Wrapped
}

// Wrap returns a new SDKError with the same code and message, wrapping
// the given error as its cause.
func (e *SDKError) Wrap(err error) *SDKError {
	return &SDKError{Code: e.Code, Msg: e.Msg, Wrapped: err}
}

// Is reports whether target is an *SDKError with the same Code. Two
// SDKErrors are considered equal by code alone, regardless of message
// or wrapped cause.
func (e *SDKError) Is(target error) bool {
	var t *SDKError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Clone returns a shallow copy, safe to mutate (e.g. to customize Msg)
// without touching the shared sentinel.
func (e *SDKError) Clone() *SDKError {
	return &SDKError{Code: e.Code, Msg: e.Msg, Wrapped: e.Wrapped}
}

// MaybeError returns err.Error() if err is non-nil, or the empty
// string otherwise.
func MaybeError(err error) string {
	if err != nil {
		return err.Error()
	}
	return ""
}
