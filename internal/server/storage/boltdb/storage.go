package boltdb

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/versioneditor/internal/server/storage"
)

var (
	// bucketVersions хранит версии по ключу ID
	bucketVersions = []byte("versions")
	// bucketVersionsByTime индекс (timestamp, seq) -> ID
	bucketVersionsByTime = []byte("versions_by_time")
)

// Storage represents BoltDB implementation of storage.VersionStorage
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db}

	if err := s.initBuckets(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Ping checks that the database file is open and readable
func (s *Storage) Ping(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	return s.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketVersions) == nil {
			return fmt.Errorf("bucket %q is missing", bucketVersions)
		}
		return nil
	})
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketVersions); err != nil {
			return fmt.Errorf("failed to create versions bucket: %w", err)
		}

		if _, err := tx.CreateBucketIfNotExists(bucketVersionsByTime); err != nil {
			return fmt.Errorf("failed to create time index bucket: %w", err)
		}

		return nil
	})
}
