// Package apperr defines the error categories surfaced to API callers and
// their HTTP status codes.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrConflict          = errors.New("conflict")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidState      = errors.New("invalid state")
	ErrGateway           = errors.New("payment gateway error")
	ErrInternal          = errors.New("internal error")
)

// Error is a categorised error carrying the text shown to API callers.
type Error struct {
	Kind error
	Text string
}

func (e *Error) Error() string { return e.Kind.Error() + ": " + e.Text }

func (e *Error) Unwrap() error { return e.Kind }

// New wraps kind with a caller-facing message, e.g.
// New(ErrNotFound, "wash request %s not found", id).
func New(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Text: fmt.Sprintf(format, args...)}
}

// StatusCode maps an error to the HTTP status code for its category.
// Uncategorised errors map to 500.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrInvalidState):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrGateway):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the text safe to show a caller: the text given to New, or
// a generic line for the category. Internal errors are not echoed back.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && StatusCode(err) != http.StatusInternalServerError {
		return e.Text
	}
	switch StatusCode(err) {
	case http.StatusNotFound:
		return "Resource not found"
	case http.StatusForbidden:
		return "Access denied"
	case http.StatusConflict:
		return "Request conflicts with the current state"
	case http.StatusBadGateway:
		return "Payment gateway unavailable"
	case http.StatusBadRequest:
		return "Invalid request"
	default:
		return "Internal server error"
	}
}
