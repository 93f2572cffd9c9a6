package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/versioneditor/internal/client/storage"
)

// Черновик один, хранится под фиксированным ключом
var keyCurrentDraft = []byte("current")

// SaveDraft replaces the current draft
func (s *Storage) SaveDraft(ctx context.Context, draft *storage.Draft) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDraft)
		if bucket == nil {
			return fmt.Errorf("draft bucket not found")
		}

		if err := bucket.Put(keyCurrentDraft, data); err != nil {
			return fmt.Errorf("failed to save draft: %w", err)
		}
		return nil
	})
}

// GetDraft returns the current draft or storage.ErrDraftNotFound
func (s *Storage) GetDraft(ctx context.Context) (*storage.Draft, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var draft storage.Draft

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDraft)
		if bucket == nil {
			return fmt.Errorf("draft bucket not found")
		}

		data := bucket.Get(keyCurrentDraft)
		if data == nil {
			return storage.ErrDraftNotFound
		}

		// data валиден только внутри транзакции, Unmarshal копирует значения
		if err := json.Unmarshal(data, &draft); err != nil {
			return fmt.Errorf("failed to unmarshal draft: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &draft, nil
}

// ClearDraft removes the current draft
func (s *Storage) ClearDraft(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDraft)
		if bucket == nil {
			return fmt.Errorf("draft bucket not found")
		}

		if err := bucket.Delete(keyCurrentDraft); err != nil {
			return fmt.Errorf("failed to clear draft: %w", err)
		}
		return nil
	})
}
