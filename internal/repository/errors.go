package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrNotInitialized is returned when the trip store was never connected
	// and is permanently disabled for this process.
	ErrNotInitialized = errors.New("trip store not initialized")
)
