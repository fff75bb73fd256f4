package errs

import "errors"

// Common sentinel errors for cross-layer signaling.
var (
	ErrNotFound = errors.New("not_found")
	ErrConflict = errors.New("conflict")
	ErrInvalid  = errors.New("invalid")
	// ErrUnprocessable is used for semantic validation failures (HTTP 422),
	// e.g. persisting a period that fails the save checks.
	ErrUnprocessable = errors.New("unprocessable")
)
