package cli

import (
	"context"

	"github.com/iudanet/versioneditor/internal/client/render"
)

// runDelete удаляет версию после подтверждения (или сразу с yes).
// Остальные версии не пересчитываются.
func (c *Cli) runDelete(ctx context.Context, id string, yes bool) error {
	if !yes {
		// Сначала получаем версию для показа информации
		version, err := c.api.GetVersion(ctx, id)
		if err != nil {
			return versionError(id, err)
		}

		c.io.Println("About to delete:")
		c.io.Printf("  ID:      %s\n", version.ID)
		c.io.Printf("  Saved:   %s\n", version.Timestamp.Local().Format("2006-01-02 15:04:05"))
		c.io.Printf("  Preview: %s\n", render.Preview(version.NewText, 60))
		c.io.Println()

		ok, err := c.confirm("Are you sure you want to delete this version?")
		if err != nil {
			return err
		}
		if !ok {
			c.io.Println("Deletion cancelled.")
			return nil
		}
	}

	deleted, err := c.api.DeleteVersion(ctx, id)
	if err != nil {
		return versionError(id, err)
	}

	deletedID := id
	if deleted != nil {
		deletedID = deleted.ID
	}
	c.io.Printf("✓ Version %s deleted\n", deletedID)

	return nil
}
