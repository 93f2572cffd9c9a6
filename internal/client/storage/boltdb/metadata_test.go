package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

func TestSaveAndGetLastSaved(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Изначально ничего не сохранено
	id, at, err := store.GetLastSaved(ctx)
	require.NoError(t, err)
	assert.Empty(t, id)
	assert.True(t, at.IsZero())

	savedAt := time.Date(2025, 6, 1, 9, 30, 0, 123456789, time.UTC)
	require.NoError(t, store.SaveLastSaved(ctx, "version-1", savedAt))

	id, at, err = store.GetLastSaved(ctx)
	require.NoError(t, err)
	assert.Equal(t, "version-1", id)
	assert.True(t, savedAt.Equal(at))

	// Последнее сохранение перезаписывает предыдущее
	require.NoError(t, store.SaveLastSaved(ctx, "version-2", savedAt.Add(time.Minute)))
	id, _, err = store.GetLastSaved(ctx)
	require.NoError(t, err)
	assert.Equal(t, "version-2", id)
}

func TestLastSaved_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Удаляем bucket metadata напрямую
	require.NoError(t, store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketMetadata)
	}))

	_, _, err := store.GetLastSaved(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metadata bucket not found")

	err = store.SaveLastSaved(ctx, "v", time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metadata bucket not found")
}
