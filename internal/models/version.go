package models

import (
	"time"

	"github.com/iudanet/versioneditor/internal/diff"
)

// Version представляет неизменяемый снимок документа вместе с пословным
// diff относительно предыдущего снимка.
// После создания запись не изменяется, допускается только удаление целиком.
type Version struct {
	Timestamp    time.Time `json:"timestamp"`    // Timestamp серверное время создания, единственный ключ сортировки
	ID           string    `json:"id"`           // ID уникальный идентификатор (UUID), не переиспользуется
	PreviousText string    `json:"previousText"` // PreviousText полный текст предыдущей версии ("" для первой)
	NewText      string    `json:"newText"`      // NewText полный текст этой версии
	AddedWords   []string  `json:"addedWords"`   // AddedWords слова NewText, отсутствующие в PreviousText
	RemovedWords []string  `json:"removedWords"` // RemovedWords слова PreviousText, отсутствующие в NewText
	OldLength    int       `json:"oldLength"`    // OldLength число токенов PreviousText
	NewLength    int       `json:"newLength"`    // NewLength число токенов NewText
}

// NewVersion builds a fully populated Version for newText against the
// baseline previousText. Word sets and lengths come from a single
// diff.Compute call so they always agree with the stored texts.
func NewVersion(id string, ts time.Time, previousText, newText string) *Version {
	summary := diff.Compute(previousText, newText)

	return &Version{
		ID:           id,
		Timestamp:    ts,
		PreviousText: previousText,
		NewText:      newText,
		AddedWords:   summary.Added,
		RemovedWords: summary.Removed,
		OldLength:    summary.OldLength,
		NewLength:    summary.NewLength,
	}
}

// IsNewerThan reports whether v sorts after other in history order.
// Only the timestamp is compared; equal timestamps are resolved by the
// storage layer using insertion order.
func (v *Version) IsNewerThan(other *Version) bool {
	return v.Timestamp.After(other.Timestamp)
}

// Clone создает глубокую копию версии
func (v *Version) Clone() *Version {
	added := make([]string, len(v.AddedWords))
	copy(added, v.AddedWords)

	removed := make([]string, len(v.RemovedWords))
	copy(removed, v.RemovedWords)

	return &Version{
		ID:           v.ID,
		Timestamp:    v.Timestamp,
		PreviousText: v.PreviousText,
		NewText:      v.NewText,
		AddedWords:   added,
		RemovedWords: removed,
		OldLength:    v.OldLength,
		NewLength:    v.NewLength,
	}
}

// Normalize replaces nil word slices with empty ones so that JSON output
// always carries arrays.
func (v *Version) Normalize() {
	if v.AddedWords == nil {
		v.AddedWords = []string{}
	}
	if v.RemovedWords == nil {
		v.RemovedWords = []string{}
	}
}
