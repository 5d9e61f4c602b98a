// Package post provides use cases for managing blog posts.
package post

import "errors"

// Sentinel errors for post use case operations.
var (
	// ErrPostNotFound indicates that the requested post was not found.
	ErrPostNotFound = errors.New("post not found")
)
