package apiclient

import (
	"errors"
	"fmt"
)

var (
	// ErrRequestFailed indicates the server answered with a non-2xx status
	ErrRequestFailed = errors.New("apiclient.request_failed")

	// ErrUnauthorized indicates a 401 response (missing or rejected token)
	ErrUnauthorized = errors.New("apiclient.unauthorized")

	// ErrNotFound indicates a 404 response
	ErrNotFound = errors.New("apiclient.not_found")

	// ErrDecodeResponse indicates the response body was not valid JSON
	ErrDecodeResponse = errors.New("apiclient.decode_response_failed")
)

// APIError carries the HTTP status and the server-provided message of a
// failed request. It wraps one of the package sentinels, so callers can use
// errors.Is for coarse branching and errors.As for details.
type APIError struct {
	StatusCode int
	Message    string
	sentinel   error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: status %d", e.sentinel, e.StatusCode)
	}
	return fmt.Sprintf("%s: status %d: %s", e.sentinel, e.StatusCode, e.Message)
}

// Unwrap exposes the sentinel for errors.Is checks.
func (e *APIError) Unwrap() error {
	return e.sentinel
}

// newAPIError maps a status code to its sentinel.
func newAPIError(status int, message string) *APIError {
	sentinel := ErrRequestFailed
	switch status {
	case 401:
		sentinel = ErrUnauthorized
	case 404:
		sentinel = ErrNotFound
	}
	return &APIError{StatusCode: status, Message: message, sentinel: sentinel}
}
