package fairness

import "errors"

var (
	// ErrEntropyUnavailable is returned when the secure random source cannot be read.
	ErrEntropyUnavailable = errors.New("fairness: secure entropy unavailable")
	// ErrInvalidKeyLength is returned when a commitment is requested with an empty key.
	ErrInvalidKeyLength = errors.New("fairness: key must not be empty")
)
