package cliutil

import (
	"errors"
	"strings"
)

// NewError creates a new error with the given error code, underlying error and optional
// hints.
func NewError(code ErrorCode, err error, hints ...string) error {
	return &Error{code: code, err: err, hints: hints}
}

// InvalidArguments returns an error with code [ErrInvalidArguments]. Hints are
// human-readable strings meant for the end user and may be omitted.
func InvalidArguments(hints ...string) error {
	return &Error{code: ErrInvalidArguments, hints: hints}
}

// ErrorCode represents an error code for a specific error type.
type ErrorCode int

const (
	// ErrInvalidArguments reports an ambiguous or malformed set of options.
	ErrInvalidArguments ErrorCode = iota + 1
	// ErrShowHelp asks the host application to display its usage.
	ErrShowHelp
)

func (c ErrorCode) String() string {
	return convertErrorCode(c)
}

// Error lets a bare code be used as an errors.Is target:
//
//	errors.Is(err, cliutil.ErrInvalidArguments)
func (c ErrorCode) Error() string {
	return convertErrorCode(c)
}

func convertErrorCode(code ErrorCode) string {
	switch code {
	case ErrInvalidArguments:
		return "invalid arguments were passed in, please check and try again"
	case ErrShowHelp:
		return "show help"
	default:
		return "unknown error"
	}
}

// Error represents an error with an error code, an optional underlying error and optional
// hints for the user.
type Error struct {
	code  ErrorCode
	err   error
	hints []string
}

// Code returns the error code.
func (e *Error) Code() ErrorCode {
	return e.code
}

// Hints returns the hints attached to the error, if any.
func (e *Error) Hints() []string {
	return e.hints
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.err == nil {
		if len(e.hints) == 0 {
			return convertErrorCode(e.code)
		}
		return convertErrorCode(e.code) + ": " + strings.Join(e.hints, "; ")
	}
	return e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}

func (e *Error) Is(target error) bool {
	if code, ok := target.(ErrorCode); ok {
		return e.code == code
	}
	return false
}

// Hints returns the hints carried by the first [Error] in err's chain. It returns nil if
// there is none.
func Hints(err error) []string {
	var cliErr *Error
	if errors.As(err, &cliErr) {
		return cliErr.hints
	}
	return nil
}
