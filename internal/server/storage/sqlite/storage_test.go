package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/versioneditor/internal/server/storage"
	"github.com/iudanet/versioneditor/internal/server/storage/storagetest"
)

func TestStorage_VersionStorage(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) (storage.VersionStorage, func()) {
		return setupTestStorage(t)
	})
}

func TestStorage_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "versions.db")

	s, err := New(ctx, dbPath)
	require.NoError(t, err)

	v := storagetest.NewTestVersion(0, "", "persisted text")
	require.NoError(t, s.InsertVersion(ctx, v))
	require.NoError(t, s.Close())

	// Повторное открытие не должно падать на миграциях
	s, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		_ = s.Close()
	}()

	got, err := s.GetVersion(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "persisted text", got.NewText)
	assert.True(t, v.Timestamp.Equal(got.Timestamp))
}

func TestStorage_NanosecondTimestamps(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	a := storagetest.NewTestVersion(time.Nanosecond, "", "a")
	b := storagetest.NewTestVersion(2*time.Nanosecond, "a", "b")

	// Вставляем в обратном порядке
	require.NoError(t, s.InsertVersion(ctx, b))
	require.NoError(t, s.InsertVersion(ctx, a))

	versions, err := s.ListVersions(ctx)
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, b.ID, versions[0].ID)
	assert.Equal(t, a.ID, versions[1].ID)
}

func TestStorage_Migrations(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	var name string
	err := s.DB().QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'versions'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "versions", name)
}

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	// Используем in-memory database для тестов
	storage, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = storage.Close()
	}

	return storage, cleanup
}
