package storage

import (
	"context"
	"time"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveLastSaved records the version created by the last successful save
	SaveLastSaved(ctx context.Context, versionID string, at time.Time) error

	// GetLastSaved returns the version id and time of the last successful save
	// Returns "" and zero time if nothing has been saved from this client yet
	GetLastSaved(ctx context.Context) (string, time.Time, error)
}
