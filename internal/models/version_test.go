package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVersion(t *testing.T) {
	now := time.Now()

	t.Run("first version has empty baseline", func(t *testing.T) {
		v := NewVersion("id-1", now, "", "a b c")

		assert.Equal(t, "id-1", v.ID)
		assert.Equal(t, now, v.Timestamp)
		assert.Equal(t, "", v.PreviousText)
		assert.Equal(t, "a b c", v.NewText)
		assert.Equal(t, 0, v.OldLength)
		assert.Equal(t, 3, v.NewLength)
		assert.Equal(t, []string{"a", "b", "c"}, v.AddedWords)
		assert.Equal(t, []string{}, v.RemovedWords)
	})

	t.Run("diff against previous text", func(t *testing.T) {
		v := NewVersion("id-2", now, "hello", "hello world")

		assert.Equal(t, "hello", v.PreviousText)
		assert.Equal(t, 1, v.OldLength)
		assert.Equal(t, 2, v.NewLength)
		assert.Equal(t, []string{"world"}, v.AddedWords)
		assert.Empty(t, v.RemovedWords)
	})
}

func TestVersion_IsNewerThan(t *testing.T) {
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		self     *Version
		other    *Version
		name     string
		expected bool
	}{
		{
			name:     "self later",
			self:     &Version{Timestamp: base.Add(time.Nanosecond)},
			other:    &Version{Timestamp: base},
			expected: true,
		},
		{
			name:     "self earlier",
			self:     &Version{Timestamp: base},
			other:    &Version{Timestamp: base.Add(time.Minute)},
			expected: false,
		},
		{
			name:     "equal timestamps",
			self:     &Version{Timestamp: base},
			other:    &Version{Timestamp: base},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.self.IsNewerThan(tt.other))
		})
	}
}

func TestVersion_Clone(t *testing.T) {
	original := NewVersion("id-1", time.Now(), "one two", "two three")

	clone := original.Clone()
	assert.Equal(t, original, clone)

	// Изменение копии не влияет на оригинал
	clone.AddedWords[0] = "changed"
	clone.RemovedWords[0] = "changed"
	assert.Equal(t, []string{"three"}, original.AddedWords)
	assert.Equal(t, []string{"one"}, original.RemovedWords)
}

func TestVersion_NormalizeJSON(t *testing.T) {
	v := &Version{ID: "id-1", Timestamp: time.Unix(0, 0).UTC(), NewText: "x"}
	v.Normalize()

	data, err := json.Marshal(v)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, []any{}, raw["addedWords"])
	assert.Equal(t, []any{}, raw["removedWords"])
	assert.Equal(t, "id-1", raw["id"])
	assert.Contains(t, raw, "previousText")
	assert.Contains(t, raw, "oldLength")
	assert.Contains(t, raw, "newLength")
}
