package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is an error that knows which status code it should be rendered with.
type HTTPError struct {
	Code    int
	Message string
	// Fields carries per-field details, e.g. validation violations.
	Fields map[string]string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError returns an HTTPError with the given status code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// WithFields returns a copy of e carrying fields.
func (e *HTTPError) WithFields(fields map[string]string) *HTTPError {
	cp := *e
	cp.Fields = fields
	return &cp
}

var (
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "unauthorized")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "not found")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)

// Wrapf annotates err with a formatted message, keeping it matchable with errors.Is.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
