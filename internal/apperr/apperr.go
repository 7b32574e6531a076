// Package apperr defines the error taxonomy exposed at the HTTP boundary.
package apperr

import (
	"errors"
	"net/http"
)

// Error carries an HTTP status and a client-safe message. The wrapped
// cause, when set, is for logs only and never reaches the response body.
type Error struct {
	Code int
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Validation marks missing or malformed input.
func Validation(msg string) *Error {
	return &Error{Code: http.StatusBadRequest, Msg: msg}
}

// NotFound marks an unknown identity.
func NotFound(msg string) *Error {
	return &Error{Code: http.StatusNotFound, Msg: msg}
}

// Unauthorized marks missing or wrong credentials.
func Unauthorized(msg string) *Error {
	return &Error{Code: http.StatusUnauthorized, Msg: msg}
}

// Forbidden marks a credential that is present but fails verification.
func Forbidden(msg string) *Error {
	return &Error{Code: http.StatusForbidden, Msg: msg}
}

// Upload marks a rejected file (wrong type or over the size cap).
func Upload(msg string) *Error {
	return &Error{Code: http.StatusBadRequest, Msg: msg}
}

// Internal wraps an unexpected failure.
func Internal(err error) *Error {
	return &Error{Code: http.StatusInternalServerError, Msg: "Something went wrong!", Err: err}
}

// Status returns the HTTP status and client message for err. Anything
// outside the taxonomy maps to a generic 500.
func Status(err error) (int, string) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code, ae.Msg
	}
	return http.StatusInternalServerError, "Something went wrong!"
}

// CodeIs reports whether err belongs to the taxonomy with the given status.
func CodeIs(err error, code int) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Code == code
}
