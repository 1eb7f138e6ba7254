package domain

import "errors"

var (
	// ErrInvalidCriterion is returned for an unrecognized optimization criterion.
	ErrInvalidCriterion = errors.New("invalid criterion")

	// ErrMissingField is returned when a location or transport mode record
	// lacks a required field.
	ErrMissingField = errors.New("missing field")

	// ErrInvalidField is returned when a field is present but out of range.
	ErrInvalidField = errors.New("invalid field")

	// ErrDistanceUnavailable marks a pair whose distance could not be computed.
	ErrDistanceUnavailable = errors.New("distance unavailable")

	// ErrNotFound is an internal consistency failure: a pair was never computed.
	ErrNotFound = errors.New("not found")

	// ErrMissingDistance is returned when a path references a pair absent
	// from the distance matrix.
	ErrMissingDistance = errors.New("missing distance")

	ErrTooManyDestinations = errors.New("too many destinations")
	ErrDuplicateLocation   = errors.New("duplicate location")
)
