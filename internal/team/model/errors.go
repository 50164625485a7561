package model

import "errors"

var (
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrInvalidTeamName indicates that the provided team name is invalid (e.g., empty).
	ErrInvalidTeamName = errors.New("invalid team name")
	// ErrInvalidPrice indicates a negative price.
	ErrInvalidPrice = errors.New("price must not be negative")
	// ErrInvalidCapacity indicates a negative capacity.
	ErrInvalidCapacity = errors.New("capacity must not be negative")
	// ErrNoFieldsToUpdate indicates an update request with no fields set.
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)
