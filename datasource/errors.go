package datasource

import (
	"errors"
	"fmt"
)

// InputError signals a query that was rejected before any request was
// issued (e.g. an empty city name).
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return "invalid input: " + e.Reason
}

// NetworkError signals a transport-level failure or timeout. The fetch is
// aborted and no data is produced.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("could not reach server: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError signals that the remote service returned a non-success status.
// Message carries the remote-provided error text when the payload had one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("API returned status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an APIError for an unknown city.
func IsNotFound(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.StatusCode == 404
}
