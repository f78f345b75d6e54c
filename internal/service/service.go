// Package service holds the domain services sitting between the HTTP
// handlers and the store. Each operation wraps store failures in a
// user-facing message; handlers translate the wrapped sentinel into an
// HTTP status.
package service

import "errors"

// ErrInvalid marks a request rejected by domain validation.
var ErrInvalid = errors.New("invalid input")

// Error carries the user-facing message for a failed operation. The
// wrapped error keeps the cause reachable for errors.Is/As.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func fail(msg string, err error) error {
	return &Error{Message: msg, Err: err}
}
