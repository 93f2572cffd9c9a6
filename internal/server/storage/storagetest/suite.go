// Package storagetest содержит общий набор тестов для реализаций
// storage.VersionStorage.
package storagetest

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/versioneditor/internal/models"
	"github.com/iudanet/versioneditor/internal/server/storage"
)

// Factory creates an empty storage and a cleanup function.
type Factory func(t *testing.T) (storage.VersionStorage, func())

// Run executes the shared VersionStorage tests against storages produced by newStorage.
func Run(t *testing.T, newStorage Factory) {
	t.Run("EmptyStorage", func(t *testing.T) { testEmptyStorage(t, newStorage) })
	t.Run("InsertAndGet", func(t *testing.T) { testInsertAndGet(t, newStorage) })
	t.Run("InsertDuplicateID", func(t *testing.T) { testInsertDuplicateID(t, newStorage) })
	t.Run("ListOrder", func(t *testing.T) { testListOrder(t, newStorage) })
	t.Run("EqualTimestampsUseInsertionOrder", func(t *testing.T) { testEqualTimestamps(t, newStorage) })
	t.Run("LatestIsMaxTimestamp", func(t *testing.T) { testLatestIsMaxTimestamp(t, newStorage) })
	t.Run("Delete", func(t *testing.T) { testDelete(t, newStorage) })
	t.Run("DeleteNotFound", func(t *testing.T) { testDeleteNotFound(t, newStorage) })
	t.Run("InsertIfLatest", func(t *testing.T) { testInsertIfLatest(t, newStorage) })
	t.Run("InsertIfLatestConcurrent", func(t *testing.T) { testInsertIfLatestConcurrent(t, newStorage) })
	t.Run("Ping", func(t *testing.T) { testPing(t, newStorage) })
}

var baseTime = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

// NewTestVersion builds a version with a fresh UUID at baseTime+offset.
func NewTestVersion(offset time.Duration, previousText, newText string) *models.Version {
	return models.NewVersion(uuid.New().String(), baseTime.Add(offset), previousText, newText)
}

func testEmptyStorage(t *testing.T, newStorage Factory) {
	ctx := context.Background()
	s, cleanup := newStorage(t)
	defer cleanup()

	latest, err := s.GetLatestVersion(ctx)
	assert.ErrorIs(t, err, storage.ErrVersionNotFound)
	assert.Nil(t, latest)

	versions, err := s.ListVersions(ctx)
	require.NoError(t, err)
	assert.NotNil(t, versions)
	assert.Empty(t, versions)

	_, err = s.GetVersion(ctx, uuid.New().String())
	assert.ErrorIs(t, err, storage.ErrVersionNotFound)
}

func testInsertAndGet(t *testing.T, newStorage Factory) {
	ctx := context.Background()
	s, cleanup := newStorage(t)
	defer cleanup()

	tests := []struct {
		version *models.Version
		name    string
	}{
		{
			name:    "first version with empty baseline",
			version: NewTestVersion(0, "", "a b c"),
		},
		{
			name:    "version with removed words",
			version: NewTestVersion(time.Second, "a b c", "a c d"),
		},
		{
			name:    "whitespace only text",
			version: NewTestVersion(2*time.Second, "a c d", "   "),
		},
		{
			name:    "unicode text",
			version: NewTestVersion(3*time.Second, "", "привет мир 🌍"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.InsertVersion(ctx, tt.version)
			require.NoError(t, err)

			got, err := s.GetVersion(ctx, tt.version.ID)
			require.NoError(t, err)
			assertVersionEqual(t, tt.version, got)
		})
	}
}

func testInsertDuplicateID(t *testing.T, newStorage Factory) {
	ctx := context.Background()
	s, cleanup := newStorage(t)
	defer cleanup()

	v := NewTestVersion(0, "", "hello")
	require.NoError(t, s.InsertVersion(ctx, v))

	dup := v.Clone()
	dup.Timestamp = dup.Timestamp.Add(time.Second)
	err := s.InsertVersion(ctx, dup)
	assert.ErrorIs(t, err, storage.ErrVersionAlreadyExists)

	versions, err := s.ListVersions(ctx)
	require.NoError(t, err)
	assert.Len(t, versions, 1)
}

func testListOrder(t *testing.T, newStorage Factory) {
	ctx := context.Background()
	s, cleanup := newStorage(t)
	defer cleanup()

	v1 := NewTestVersion(0, "", "hello")
	v2 := NewTestVersion(time.Millisecond, "hello", "hello world")
	v3 := NewTestVersion(time.Hour, "hello world", "world")

	for _, v := range []*models.Version{v1, v2, v3} {
		require.NoError(t, s.InsertVersion(ctx, v))
	}

	versions, err := s.ListVersions(ctx)
	require.NoError(t, err)
	require.Len(t, versions, 3)

	assert.Equal(t, v3.ID, versions[0].ID)
	assert.Equal(t, v2.ID, versions[1].ID)
	assert.Equal(t, v1.ID, versions[2].ID)
	assert.Equal(t, "hello", versions[1].PreviousText)
}

func testEqualTimestamps(t *testing.T, newStorage Factory) {
	ctx := context.Background()
	s, cleanup := newStorage(t)
	defer cleanup()

	first := NewTestVersion(0, "", "first")
	second := NewTestVersion(0, "first", "second")
	third := NewTestVersion(0, "second", "third")

	for _, v := range []*models.Version{first, second, third} {
		require.NoError(t, s.InsertVersion(ctx, v))
	}

	versions, err := s.ListVersions(ctx)
	require.NoError(t, err)
	require.Len(t, versions, 3)
	assert.Equal(t, []string{third.ID, second.ID, first.ID}, ids(versions))

	latest, err := s.GetLatestVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, third.ID, latest.ID)
}

func testLatestIsMaxTimestamp(t *testing.T, newStorage Factory) {
	ctx := context.Background()
	s, cleanup := newStorage(t)
	defer cleanup()

	// Вставляем "из будущего" первой: latest определяется по timestamp
	newest := NewTestVersion(time.Hour, "", "newest")
	older := NewTestVersion(0, "", "older")

	require.NoError(t, s.InsertVersion(ctx, newest))
	require.NoError(t, s.InsertVersion(ctx, older))

	latest, err := s.GetLatestVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, newest.ID, latest.ID)

	versions, err := s.ListVersions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{newest.ID, older.ID}, ids(versions))
}

func testDelete(t *testing.T, newStorage Factory) {
	ctx := context.Background()
	s, cleanup := newStorage(t)
	defer cleanup()

	v1 := NewTestVersion(0, "", "one")
	v2 := NewTestVersion(time.Second, "one", "one two")
	v3 := NewTestVersion(2*time.Second, "one two", "one two three")
	for _, v := range []*models.Version{v1, v2, v3} {
		require.NoError(t, s.InsertVersion(ctx, v))
	}

	deleted, err := s.DeleteVersion(ctx, v2.ID)
	require.NoError(t, err)
	assertVersionEqual(t, v2, deleted)

	versions, err := s.ListVersions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{v3.ID, v1.ID}, ids(versions))

	// Удаление не пересчитывает diff соседних версий
	assert.Equal(t, "one two", versions[0].PreviousText)
	assert.Equal(t, []string{"three"}, versions[0].AddedWords)

	_, err = s.GetVersion(ctx, v2.ID)
	assert.ErrorIs(t, err, storage.ErrVersionNotFound)

	// Повторное удаление
	_, err = s.DeleteVersion(ctx, v2.ID)
	assert.ErrorIs(t, err, storage.ErrVersionNotFound)

	// Удаление последней версии меняет latest
	_, err = s.DeleteVersion(ctx, v3.ID)
	require.NoError(t, err)
	latest, err := s.GetLatestVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, v1.ID, latest.ID)
}

func testDeleteNotFound(t *testing.T, newStorage Factory) {
	ctx := context.Background()
	s, cleanup := newStorage(t)
	defer cleanup()

	v := NewTestVersion(0, "", "keep me")
	require.NoError(t, s.InsertVersion(ctx, v))

	deleted, err := s.DeleteVersion(ctx, "does-not-exist")
	assert.ErrorIs(t, err, storage.ErrVersionNotFound)
	assert.Nil(t, deleted)

	versions, err := s.ListVersions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{v.ID}, ids(versions))
}

func testInsertIfLatest(t *testing.T, newStorage Factory) {
	ctx := context.Background()
	s, cleanup := newStorage(t)
	defer cleanup()

	v1 := NewTestVersion(0, "", "one")

	// Хранилище не пусто по мнению вызывающего
	err := s.InsertVersionIfLatest(ctx, v1, "some-id")
	assert.ErrorIs(t, err, storage.ErrLatestChanged)

	require.NoError(t, s.InsertVersionIfLatest(ctx, v1, ""))

	v2 := NewTestVersion(time.Second, "one", "two")
	err = s.InsertVersionIfLatest(ctx, v2, "")
	assert.ErrorIs(t, err, storage.ErrLatestChanged)

	require.NoError(t, s.InsertVersionIfLatest(ctx, v2, v1.ID))

	versions, err := s.ListVersions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{v2.ID, v1.ID}, ids(versions))
}

func testInsertIfLatestConcurrent(t *testing.T, newStorage Factory) {
	ctx := context.Background()
	s, cleanup := newStorage(t)
	defer cleanup()

	base := NewTestVersion(0, "", "base")
	require.NoError(t, s.InsertVersion(ctx, base))

	const writers = 8
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0

	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			defer wg.Done()
			v := NewTestVersion(time.Duration(i+1)*time.Second, "base", fmt.Sprintf("writer %d", i))
			err := s.InsertVersionIfLatest(ctx, v, base.ID)
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, storage.ErrLatestChanged)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded, "exactly one writer must win against the same baseline")

	versions, err := s.ListVersions(ctx)
	require.NoError(t, err)
	assert.Len(t, versions, 2)
}

func testPing(t *testing.T, newStorage Factory) {
	s, cleanup := newStorage(t)
	defer cleanup()

	assert.NoError(t, s.Ping(context.Background()))
}

func assertVersionEqual(t *testing.T, want, got *models.Version) {
	t.Helper()

	require.NotNil(t, got)
	assert.Equal(t, want.ID, got.ID)
	assert.True(t, want.Timestamp.Equal(got.Timestamp), "timestamp: want %v, got %v", want.Timestamp, got.Timestamp)
	assert.Equal(t, want.PreviousText, got.PreviousText)
	assert.Equal(t, want.NewText, got.NewText)
	assert.Equal(t, want.AddedWords, got.AddedWords)
	assert.Equal(t, want.RemovedWords, got.RemovedWords)
	assert.Equal(t, want.OldLength, got.OldLength)
	assert.Equal(t, want.NewLength, got.NewLength)
}

func ids(versions []*models.Version) []string {
	out := make([]string, 0, len(versions))
	for _, v := range versions {
		out = append(out, v.ID)
	}
	return out
}
