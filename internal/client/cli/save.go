package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/versioneditor/internal/client/storage"
)

// runSave сохраняет текст как новую версию. С fromDraft сохраняется локальный
// черновик, после чего он привязывается к новой версии.
func (c *Cli) runSave(ctx context.Context, src textSource, fromDraft bool) error {
	var (
		text  string
		draft *storage.Draft
		err   error
	)

	if fromDraft {
		draft, err = c.local.GetDraft(ctx)
		if err != nil {
			if errors.Is(err, storage.ErrDraftNotFound) {
				return errors.New("no draft to save: use 'draft set' or 'restore' first")
			}
			return fmt.Errorf("failed to read draft: %w", err)
		}
		text = draft.Text
	} else {
		text, err = c.readText(src)
		if err != nil {
			return err
		}
	}

	version, err := c.api.SaveVersion(ctx, text)
	if err != nil {
		return err
	}

	c.io.Printf("✓ Version saved: %s\n", version.ID)
	c.io.Printf("  +%d added, -%d removed (%d -> %d words)\n",
		len(version.AddedWords), len(version.RemovedWords), version.OldLength, version.NewLength)

	// Сбой локальных метаданных не отменяет сохранение на сервере
	if err := c.local.SaveLastSaved(ctx, version.ID, version.Timestamp); err != nil {
		c.io.Printf("Warning: failed to record last saved version: %v\n", err)
	}

	if draft != nil {
		draft.BaseVersionID = version.ID
		draft.UpdatedAt = c.now()
		if err := c.local.SaveDraft(ctx, draft); err != nil {
			c.io.Printf("Warning: failed to update draft: %v\n", err)
		}
	}

	return nil
}
