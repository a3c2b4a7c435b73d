// Package apperrors defines the error taxonomy shared by services and the HTTP boundary.
//
// Every error a service returns to a handler is either an *Error carrying one of the
// kind sentinels below or an unexpected error, which is treated as internal.
package apperrors

import (
	"errors"
	"net/http"
)

// Kind sentinels. Use errors.Is to test an error's kind.
var (
	ErrValidation     = errors.New("validation error")
	ErrAuthentication = errors.New("authentication error")
	ErrAuthorization  = errors.New("authorization error")
	ErrConflict       = errors.New("conflict")
	ErrNotFound       = errors.New("not found")
	ErrInternal       = errors.New("internal error")
)

const internalMessage = "Internal server error"

// Error is a classified error. Message is safe to show to clients, Err is the
// internal cause and never leaves the process.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As
func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func newError(kind error, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Err: cause}
}

// Validation returns a ValidationError with the given client message
func Validation(msg string) *Error { return newError(ErrValidation, msg, nil) }

// Authentication returns an AuthenticationError. cause is kept for logging only.
func Authentication(msg string, cause error) *Error {
	return newError(ErrAuthentication, msg, cause)
}

// Authorization returns an AuthorizationError
func Authorization(msg string) *Error { return newError(ErrAuthorization, msg, nil) }

// Conflict returns a ConflictError
func Conflict(msg string, cause error) *Error { return newError(ErrConflict, msg, cause) }

// NotFound returns a NotFoundError
func NotFound(msg string, cause error) *Error { return newError(ErrNotFound, msg, cause) }

// Internal wraps an unexpected failure. The client only ever sees a generic message.
func Internal(cause error) *Error { return newError(ErrInternal, internalMessage, cause) }

// StatusCode maps an error's kind to an HTTP status
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, ErrAuthorization):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the client facing message for err.
// Internal and unclassified errors always produce a generic message.
func PublicMessage(err error) string {
	var appErr *Error
	if !errors.As(err, &appErr) || errors.Is(appErr.Kind, ErrInternal) {
		return internalMessage
	}
	return appErr.Message
}
