// Package errors carries errors that know which HTTP status they map to.
package errors

import (
	"errors"
	"net/http"
)

// HTTPError is an error returned to API clients with a specific status code.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

var (
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	ErrForbidden           = NewHTTPError(http.StatusForbidden, "Forbidden")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Something went wrong, please retry later")
)

// StatusCode returns the HTTP status carried by err, or fallback when err is not an HTTPError.
func StatusCode(err error, fallback int) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	return fallback
}
