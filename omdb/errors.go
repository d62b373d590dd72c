package omdb

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Common errors returned by the OMDb client.
var (
	// ErrInvalidConfig indicates invalid client configuration.
	ErrInvalidConfig = errors.New("invalid omdb configuration")

	// ErrNoConnection indicates the API could not be reached.
	ErrNoConnection = errors.New("failed to connect to omdb")

	// ErrInvalidResponse indicates the API returned an unexpected response format.
	ErrInvalidResponse = errors.New("invalid response from OMDb API")

	// ErrInvalidID indicates the id is not an IMDb id.
	ErrInvalidID = errors.New("invalid IMDb id")
)

// APIError is a failure reported by OMDb, either as a non-2xx status or as a
// "Response": "False" body.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("omdb API error: status %d: %s", e.StatusCode, e.PublicMessage())
}

// PublicMessage returns the provider's message or the status text
func (e *APIError) PublicMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.StatusCode)
}

// IsNotFound checks if OMDb could not find the title
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound ||
		strings.Contains(strings.ToLower(e.Message), "not found") ||
		strings.Contains(strings.ToLower(e.Message), "incorrect imdb id")
}

// IsUnauthorized checks if the API key was rejected
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized ||
		strings.Contains(strings.ToLower(e.Message), "api key")
}

// connError hides the transport details, which include the keyed URL
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
