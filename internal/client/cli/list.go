package cli

import (
	"context"
)

// runList печатает историю версий, новые первыми
func (c *Cli) runList(ctx context.Context, format string) error {
	versions, err := c.api.ListVersions(ctx)
	if err != nil {
		return err
	}

	return c.renderer.List(c.io, versions, format)
}
