// Package errors defines the stable error codes for navigator failures.
//
// "Legitimately nothing here" is never an error: resolvers surface missing
// projects, empty packages, and absent archive entries as empty results.
// Coded errors are reserved for structural inconsistency between the caller
// and the current model state.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// RootNotFound indicates a rootPath was supplied but resolves to no
	// package root (a stale or malformed client query)
	RootNotFound ErrorCode = "ROOT_NOT_FOUND"
	// UnknownNodeKind indicates a dispatch-table miss, i.e. a
	// client/server protocol version mismatch
	UnknownNodeKind ErrorCode = "UNKNOWN_NODE_KIND"
	// IOFailure indicates an archive stream read error; callers degrade
	// it to empty content after logging
	IOFailure ErrorCode = "IO_FAILURE"
	// Canceled indicates the caller abandoned the query; a no-result
	// outcome, not a data error
	Canceled ErrorCode = "CANCELED"
)

// NavError represents a navigator error with a stable code and a
// human-readable message.
type NavError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	cause   error     // underlying error, not exported to JSON
}

// New creates a new NavError.
func New(code ErrorCode, message string) *NavError {
	return &NavError{Code: code, Message: message}
}

// Newf creates a new NavError with a formatted message.
func Newf(code ErrorCode, format string, args ...any) *NavError {
	return &NavError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a new NavError carrying an underlying cause.
func Wrap(code ErrorCode, message string, cause error) *NavError {
	return &NavError{Code: code, Message: message, cause: cause}
}

// Error implements the error interface
func (e *NavError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *NavError) Unwrap() error {
	return e.cause
}

// CodeOf returns the error code of err if it is (or wraps) a NavError,
// or the empty code otherwise.
func CodeOf(err error) ErrorCode {
	var navErr *NavError
	if errors.As(err, &navErr) {
		return navErr.Code
	}
	return ""
}

// IsCode reports whether err is (or wraps) a NavError with the given code.
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}
