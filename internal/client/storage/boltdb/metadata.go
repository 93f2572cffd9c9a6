package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/versioneditor/internal/client/storage"
)

var (
	keyLastSavedVersionID = []byte("last_saved_version_id")
	keyLastSavedAt        = []byte("last_saved_at")
)

// SaveLastSaved records the version created by the last successful save
func (s *Storage) SaveLastSaved(ctx context.Context, versionID string, at time.Time) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Время хранится как unix nanoseconds в big-endian
		atBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(atBytes, uint64(at.UnixNano()))

		if err := bucket.Put(keyLastSavedVersionID, []byte(versionID)); err != nil {
			return fmt.Errorf("failed to save last version id: %w", err)
		}
		if err := bucket.Put(keyLastSavedAt, atBytes); err != nil {
			return fmt.Errorf("failed to save last save time: %w", err)
		}

		return nil
	})
}

// GetLastSaved returns the version id and time of the last successful save
// Returns "" and zero time if nothing has been saved yet
func (s *Storage) GetLastSaved(ctx context.Context) (string, time.Time, error) {
	if s.db == nil {
		return "", time.Time{}, storage.ErrStorageClosed
	}

	var (
		versionID string
		at        time.Time
	)

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		idBytes := bucket.Get(keyLastSavedVersionID)
		if idBytes == nil {
			return nil
		}
		versionID = string(idBytes)

		if atBytes := bucket.Get(keyLastSavedAt); len(atBytes) == 8 {
			at = time.Unix(0, int64(binary.BigEndian.Uint64(atBytes))).UTC()
		}
		return nil
	})
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to get last saved version: %w", err)
	}

	return versionID, at, nil
}
