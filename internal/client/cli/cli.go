// Package cli реализует команды клиента редактора версий.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	clientapi "github.com/iudanet/versioneditor/internal/client/api"
	"github.com/iudanet/versioneditor/internal/client/iocli"
	"github.com/iudanet/versioneditor/internal/client/render"
	"github.com/iudanet/versioneditor/internal/client/storage"
	"github.com/iudanet/versioneditor/internal/models"
	"github.com/iudanet/versioneditor/pkg/api"
)

//go:generate moq -out versionapi_mock.go . VersionAPI

// VersionAPI операции сервера версий, которые использует клиент
type VersionAPI interface {
	SaveVersion(ctx context.Context, newText string) (*models.Version, error)
	ListVersions(ctx context.Context) ([]*models.Version, error)
	GetVersion(ctx context.Context, id string) (*models.Version, error)
	DeleteVersion(ctx context.Context, id string) (*models.Version, error)
	Health(ctx context.Context) (*api.HealthResponse, error)
}

// LocalStorage локальное состояние клиента: черновик и метаданные
type LocalStorage interface {
	storage.DraftStorage
	storage.MetadataStorage
}

// Cli выполняет команды клиента
type Cli struct {
	io       iocli.IO
	api      VersionAPI
	local    LocalStorage
	renderer *render.Renderer
	now      func() time.Time
}

// New создает Cli
func New(io iocli.IO, versionAPI VersionAPI, local LocalStorage, renderer *render.Renderer) *Cli {
	return &Cli{
		io:       io,
		api:      versionAPI,
		local:    local,
		renderer: renderer,
		now:      time.Now,
	}
}

// textSource откуда брать текст для save и draft set
type textSource struct {
	file string
	args []string
}

// readText возвращает текст из файла ("-" - stdin), из аргументов
// или из stdin, если он не терминал
func (c *Cli) readText(src textSource) (string, error) {
	switch {
	case src.file == "-":
		return c.io.ReadAll()
	case src.file != "":
		data, err := os.ReadFile(src.file)
		if err != nil {
			return "", fmt.Errorf("failed to read text file: %w", err)
		}
		return string(data), nil
	case len(src.args) > 0:
		return strings.Join(src.args, " "), nil
	case !c.io.IsTerminal():
		return c.io.ReadAll()
	default:
		return "", errors.New("no text given: pass it as arguments, with --file, or pipe it to stdin")
	}
}

// confirm спрашивает подтверждение; принимаются "y" и "yes"
func (c *Cli) confirm(prompt string) (bool, error) {
	answer, err := c.io.ReadInput(prompt + " (yes/no): ")
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}

// versionError делает 404 сервера понятной ошибкой
func versionError(id string, err error) error {
	if errors.Is(err, clientapi.ErrNotFound) {
		return fmt.Errorf("version %s not found", id)
	}
	return err
}
