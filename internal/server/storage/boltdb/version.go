package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/versioneditor/internal/models"
	"github.com/iudanet/versioneditor/internal/server/storage"
)

// record хранимое представление версии
// Seq порядок вставки, используется только для разрешения равных timestamp
type record struct {
	models.Version
	Seq uint64 `json:"seq"`
}

// InsertVersion appends a new version
// Returns ErrVersionAlreadyExists if a version with the same ID is stored
func (s *Storage) InsertVersion(ctx context.Context, version *models.Version) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		return insert(tx, version)
	})
}

// InsertVersionIfLatest appends a new version if the latest stored version
// still has ID expectedLatestID
// Returns ErrLatestChanged otherwise
func (s *Storage) InsertVersionIfLatest(ctx context.Context, version *models.Version, expectedLatestID string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	// bbolt допускает одну write-транзакцию, поэтому проверка и вставка атомарны
	return s.db.Update(func(tx *bbolt.Tx) error {
		latestID := ""
		if _, id := tx.Bucket(bucketVersionsByTime).Cursor().Last(); id != nil {
			latestID = string(id)
		}

		if latestID != expectedLatestID {
			return storage.ErrLatestChanged
		}

		return insert(tx, version)
	})
}

// GetLatestVersion retrieves the version with the maximum timestamp
// Returns ErrVersionNotFound if storage is empty
func (s *Storage) GetLatestVersion(ctx context.Context) (*models.Version, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var version *models.Version

	err := s.db.View(func(tx *bbolt.Tx) error {
		_, id := tx.Bucket(bucketVersionsByTime).Cursor().Last()
		if id == nil {
			return storage.ErrVersionNotFound
		}

		rec, err := get(tx, id)
		if err != nil {
			return err
		}
		version = &rec.Version
		return nil
	})
	if err != nil {
		return nil, err
	}

	return version, nil
}

// GetVersion retrieves a single version by ID
// Returns ErrVersionNotFound if version doesn't exist
func (s *Storage) GetVersion(ctx context.Context, id string) (*models.Version, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var version *models.Version

	err := s.db.View(func(tx *bbolt.Tx) error {
		rec, err := get(tx, []byte(id))
		if err != nil {
			return err
		}
		version = &rec.Version
		return nil
	})
	if err != nil {
		return nil, err
	}

	return version, nil
}

// ListVersions retrieves all versions, newest first
// Returns empty slice if no versions found
func (s *Storage) ListVersions(ctx context.Context) ([]*models.Version, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	versions := make([]*models.Version, 0)

	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketVersionsByTime).Cursor()

		// Обходим индекс с конца: ключи упорядочены по (timestamp, seq)
		for k, id := c.Last(); k != nil; k, id = c.Prev() {
			rec, err := get(tx, id)
			if err != nil {
				return err
			}
			versions = append(versions, &rec.Version)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list versions: %w", err)
	}

	return versions, nil
}

// DeleteVersion removes version by ID and returns the removed record
// Returns ErrVersionNotFound if version doesn't exist
func (s *Storage) DeleteVersion(ctx context.Context, id string) (*models.Version, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var version *models.Version

	err := s.db.Update(func(tx *bbolt.Tx) error {
		rec, err := get(tx, []byte(id))
		if err != nil {
			return err
		}

		if err := tx.Bucket(bucketVersionsByTime).Delete(indexKey(rec)); err != nil {
			return fmt.Errorf("failed to delete index entry: %w", err)
		}

		if err := tx.Bucket(bucketVersions).Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete version: %w", err)
		}

		version = &rec.Version
		return nil
	})
	if err != nil {
		return nil, err
	}

	return version, nil
}

func insert(tx *bbolt.Tx, version *models.Version) error {
	versions := tx.Bucket(bucketVersions)

	if versions.Get([]byte(version.ID)) != nil {
		return storage.ErrVersionAlreadyExists
	}

	seq, err := versions.NextSequence()
	if err != nil {
		return fmt.Errorf("failed to allocate sequence: %w", err)
	}

	rec := &record{Version: *version.Clone(), Seq: seq}
	rec.Normalize()

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal version: %w", err)
	}

	if err := versions.Put([]byte(version.ID), data); err != nil {
		return fmt.Errorf("failed to save version: %w", err)
	}

	if err := tx.Bucket(bucketVersionsByTime).Put(indexKey(rec), []byte(version.ID)); err != nil {
		return fmt.Errorf("failed to save index entry: %w", err)
	}

	return nil
}

func get(tx *bbolt.Tx, id []byte) (*record, error) {
	data := tx.Bucket(bucketVersions).Get(id)
	if data == nil {
		return nil, storage.ErrVersionNotFound
	}

	rec := &record{}
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal version: %w", err)
	}
	rec.Normalize()

	return rec, nil
}

// indexKey строит ключ индекса: 8 байт timestamp (big-endian, знак
// инвертирован для корректной сортировки отрицательных значений)
// и 8 байт seq
func indexKey(rec *record) []byte {
	key := make([]byte, 16)
	binary.BigEndian.PutUint64(key[:8], uint64(rec.Timestamp.UnixNano())^(1<<63))
	binary.BigEndian.PutUint64(key[8:], rec.Seq)
	return key
}
