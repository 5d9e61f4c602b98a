package repository

import "errors"

var (
	// ErrDuplicate is returned when a write violates a unique constraint.
	ErrDuplicate = errors.New("duplicate record")

	// ErrNotFound is returned by Update when no row matches the record's ID.
	ErrNotFound = errors.New("record not found")
)
