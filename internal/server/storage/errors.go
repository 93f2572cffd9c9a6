package storage

import "errors"

// Common storage errors
var (
	// ErrVersionNotFound indicates that version was not found in storage
	ErrVersionNotFound = errors.New("version not found")

	// ErrVersionAlreadyExists indicates that version with this id is already stored
	ErrVersionAlreadyExists = errors.New("version already exists")

	// ErrLatestChanged indicates that another version was appended after
	// the caller read its baseline (compare-and-swap lost)
	ErrLatestChanged = errors.New("latest version changed")

	// ErrStorageClosed indicates that storage was already closed
	ErrStorageClosed = errors.New("storage is closed")
)
