// Package author provides use cases for managing blog authors.
// It runs the field validators, enforces name uniqueness against the
// repository and persists the result.
package author

import "errors"

// Sentinel errors for author use case operations.
var (
	// ErrAuthorNotFound indicates that the requested author was not found.
	// This error is typically returned when attempting to retrieve or update
	// an author that does not exist in the repository.
	ErrAuthorNotFound = errors.New("author not found")
)
