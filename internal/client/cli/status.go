package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/iudanet/versioneditor/internal/client/storage"
)

// runStatus показывает доступность сервера, последнее сохранение и черновик
func (c *Cli) runStatus(ctx context.Context, serverURL string) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	c.io.Printf("Server:  %s\n", serverURL)
	health, err := c.api.Health(ctx)
	if err != nil {
		// Не прерываем выполнение: локальное состояние доступно и без сервера
		c.io.Printf("  ✗ unavailable: %v\n", err)
	} else {
		c.io.Printf("  ✓ %s (version %s)\n", health.Status, health.Version)
	}

	lastID, lastAt, err := c.local.GetLastSaved(ctx)
	if err != nil {
		return fmt.Errorf("failed to read client metadata: %w", err)
	}
	if lastID == "" {
		c.io.Println("Last save: none from this client")
	} else {
		c.io.Printf("Last save: %s (%s)\n", lastID, humanize.RelTime(lastAt, c.now(), "ago", "from now"))
	}

	draft, err := c.local.GetDraft(ctx)
	switch {
	case errors.Is(err, storage.ErrDraftNotFound):
		c.io.Println("Draft:     none")
	case err != nil:
		return fmt.Errorf("failed to read draft: %w", err)
	default:
		base := "new"
		if draft.BaseVersionID != "" {
			base = "based on " + draft.BaseVersionID
		}
		c.io.Printf("Draft:     %s, %s characters, updated %s\n",
			base, humanize.Comma(int64(len([]rune(draft.Text)))),
			humanize.RelTime(draft.UpdatedAt, c.now(), "ago", "from now"))
	}

	return nil
}
