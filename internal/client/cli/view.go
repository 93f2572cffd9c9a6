package cli

import (
	"context"
	"io"
)

// runView показывает версию с подсвеченными изменениями
func (c *Cli) runView(ctx context.Context, id string) error {
	version, err := c.api.GetVersion(ctx, id)
	if err != nil {
		return versionError(id, err)
	}

	return c.renderer.Version(c.io, version)
}

// runCopy выводит текст версии без форматирования, например для pbcopy
func (c *Cli) runCopy(ctx context.Context, id string) error {
	version, err := c.api.GetVersion(ctx, id)
	if err != nil {
		return versionError(id, err)
	}

	_, err = io.WriteString(c.io, version.NewText)
	return err
}
