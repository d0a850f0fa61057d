package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers any missing row or file lookup.
	ErrNotFound = errors.New("not found")
	// ErrForbidden signals that the authenticated subject does not own the row.
	ErrForbidden = errors.New("access denied")
	// ErrInvalidInput marks request payloads the service refuses to act on.
	// Handlers surface these verbatim; anything not wrapped in a sentinel is
	// treated as an internal failure and hidden from the client.
	ErrInvalidInput = errors.New("invalid input")
)

// invalidf builds an ErrInvalidInput with a caller-facing reason.
func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
