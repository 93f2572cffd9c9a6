package storage

import (
	"context"

	"github.com/iudanet/versioneditor/internal/models"
)

//go:generate moq -out version_mock.go . VersionStorage

// VersionStorage defines interface for append-only version history persistence
type VersionStorage interface {
	// InsertVersion appends a new version
	// Returns ErrVersionAlreadyExists if a version with the same ID is stored
	InsertVersion(ctx context.Context, version *models.Version) error

	// InsertVersionIfLatest appends a new version only if the current latest
	// version has ID expectedLatestID ("" means the store must be empty).
	// Returns ErrLatestChanged otherwise. Check and insert are atomic.
	InsertVersionIfLatest(ctx context.Context, version *models.Version, expectedLatestID string) error

	// GetLatestVersion retrieves the version with the maximum timestamp
	// (ties resolved by insertion order)
	// Returns ErrVersionNotFound if storage is empty
	GetLatestVersion(ctx context.Context) (*models.Version, error)

	// GetVersion retrieves a single version by ID
	// Returns ErrVersionNotFound if version doesn't exist
	GetVersion(ctx context.Context, id string) (*models.Version, error)

	// ListVersions retrieves all versions ordered by timestamp descending,
	// ties in reverse insertion order
	// Returns empty slice if no versions found
	ListVersions(ctx context.Context) ([]*models.Version, error)

	// DeleteVersion removes version by ID and returns the removed record
	// Other versions are not touched
	// Returns ErrVersionNotFound if version doesn't exist
	DeleteVersion(ctx context.Context, id string) (*models.Version, error)

	// Ping checks that the underlying database is reachable
	Ping(ctx context.Context) error

	// Close releases the underlying database
	Close() error
}
