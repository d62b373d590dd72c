package kinopoisk

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid kinopoisk configuration")
	// ErrNoConnection indicates the API could not be reached
	ErrNoConnection = errors.New("failed to connect to kinopoisk")
	// ErrInvalidResponse indicates a body that could not be decoded
	ErrInvalidResponse = errors.New("invalid response from kinopoisk")
)

// APIError represents a non-2xx Kinopoisk response
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("kinopoisk API error: status %d: %s", e.StatusCode, e.PublicMessage())
}

// PublicMessage returns the provider's message, or the HTTP status text when
// the body carried none
func (e *APIError) PublicMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.StatusCode)
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// connError hides the transport details behind ErrNoConnection
type connError struct {
	err error
}

func (e *connError) Error() string {
	return fmt.Sprintf("%v: %v", ErrNoConnection, e.err)
}

func (e *connError) Unwrap() []error {
	return []error{ErrNoConnection, e.err}
}

// PublicMessage keeps transport details out of user-visible text
func (e *connError) PublicMessage() string {
	return ErrNoConnection.Error()
}
