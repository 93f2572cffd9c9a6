package storage

import (
	"context"
	"time"
)

// Draft локальный редактируемый текст, который еще не сохранен как версия
type Draft struct {
	UpdatedAt time.Time `json:"updated_at"`
	// BaseVersionID версия, из которой текст был восстановлен или в которую
	// был сохранен последний раз. Пусто для нового черновика.
	BaseVersionID string `json:"base_version_id,omitempty"`
	Text          string `json:"text"`
}

//go:generate moq -out draft_mock.go . DraftStorage

// DraftStorage defines interface for the local draft
type DraftStorage interface {
	// SaveDraft replaces the current draft
	SaveDraft(ctx context.Context, draft *Draft) error

	// GetDraft returns the current draft or ErrDraftNotFound
	GetDraft(ctx context.Context) (*Draft, error)

	// ClearDraft removes the current draft; clearing a missing draft is not an error
	ClearDraft(ctx context.Context) error
}
