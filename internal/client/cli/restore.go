package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/versioneditor/internal/client/storage"
)

// runRestore копирует текст версии в локальный черновик.
// История на сервере не меняется: новая версия появится только после save.
func (c *Cli) runRestore(ctx context.Context, id string) error {
	version, err := c.api.GetVersion(ctx, id)
	if err != nil {
		return versionError(id, err)
	}

	previous, err := c.local.GetDraft(ctx)
	if err != nil && !errors.Is(err, storage.ErrDraftNotFound) {
		return fmt.Errorf("failed to read draft: %w", err)
	}

	draft := &storage.Draft{
		Text:          version.NewText,
		BaseVersionID: version.ID,
		UpdatedAt:     c.now(),
	}
	if err := c.local.SaveDraft(ctx, draft); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}

	c.io.Printf("✓ Version %s restored into the draft\n", version.ID)
	if previous != nil && previous.Text != version.NewText {
		c.io.Println("  The previous draft text was replaced.")
	}
	c.io.Println("  Run 'versioneditor save --draft' to store it as a new version.")

	return nil
}
