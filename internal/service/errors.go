package service

import "errors"

var (
	// ErrInvalidLocation is returned when location coordinates are not finite numbers.
	ErrInvalidLocation = errors.New("invalid location")

	// ErrInvalidTripID is returned when trip ID is empty.
	ErrInvalidTripID = errors.New("invalid trip id")

	// ErrInvalidCategory is returned when a place category is empty.
	ErrInvalidCategory = errors.New("invalid place category")
)
