package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/versioneditor/internal/client/storage"
)

// runDraftShow печатает текст черновика
func (c *Cli) runDraftShow(ctx context.Context) error {
	draft, err := c.local.GetDraft(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrDraftNotFound) {
			c.io.Println("No draft.")
			return nil
		}
		return fmt.Errorf("failed to read draft: %w", err)
	}

	c.io.Println(draft.Text)
	return nil
}

// runDraftSet заменяет текст черновика
func (c *Cli) runDraftSet(ctx context.Context, src textSource) error {
	text, err := c.readText(src)
	if err != nil {
		return err
	}

	// Привязка к базовой версии сохраняется при редактировании
	draft := &storage.Draft{Text: text, UpdatedAt: c.now()}
	if previous, err := c.local.GetDraft(ctx); err == nil {
		draft.BaseVersionID = previous.BaseVersionID
	} else if !errors.Is(err, storage.ErrDraftNotFound) {
		return fmt.Errorf("failed to read draft: %w", err)
	}

	if err := c.local.SaveDraft(ctx, draft); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}

	c.io.Println("✓ Draft updated")
	return nil
}

// runDraftClear удаляет черновик
func (c *Cli) runDraftClear(ctx context.Context) error {
	if err := c.local.ClearDraft(ctx); err != nil {
		return fmt.Errorf("failed to clear draft: %w", err)
	}

	c.io.Println("✓ Draft cleared")
	return nil
}
