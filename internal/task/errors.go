package task

import "errors"

var (
	// ErrTaskNotFound is returned when an operation targets an ID that
	// is not present in the store.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidSortKey is returned for an unrecognized sort key.
	ErrInvalidSortKey = errors.New("invalid sort key")
)
