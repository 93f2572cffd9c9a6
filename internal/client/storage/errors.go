package storage

import "errors"

// Common client storage errors
var (
	// ErrDraftNotFound indicates that no local draft exists
	ErrDraftNotFound = errors.New("draft not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
