// Package versions реализует историю версий документа: сохранение нового
// текста с вычислением diff относительно последней версии, просмотр истории
// и удаление версий.
package versions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/versioneditor/internal/clock"
	"github.com/iudanet/versioneditor/internal/models"
	"github.com/iudanet/versioneditor/internal/server/storage"
	"github.com/iudanet/versioneditor/internal/validation"
)

// Ошибки сервиса. HTTP слой сопоставляет их со статусами через errors.Is.
var (
	// ErrInvalidInput текст версии отсутствует, пуст или некорректен
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound версия с указанным id не найдена
	ErrNotFound = errors.New("version not found")

	// ErrStoreUnavailable ошибка хранилища
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrConflict сохранение не удалось из-за параллельных записей
	// (только в режиме SaveModeOptimistic после исчерпания повторов)
	ErrConflict = errors.New("concurrent save conflict")
)

// SaveMode определяет защиту последовательности "прочитать latest, записать новую".
type SaveMode string

const (
	// SaveModeUnguarded без защиты: две параллельные записи могут получить
	// один и тот же baseline
	SaveModeUnguarded SaveMode = "unguarded"

	// SaveModeSerialized сохранения выполняются по одному под мьютексом процесса
	SaveModeSerialized SaveMode = "serialized"

	// SaveModeOptimistic запись через compare-and-swap по id baseline
	// с повтором при конфликте
	SaveModeOptimistic SaveMode = "optimistic"
)

// Recorder receives service-level measurements.
type Recorder interface {
	VersionSaved(added, removed int)
	VersionDeleted()
	SaveConflict()
	StoreOperation(operation string, duration time.Duration, err error)
}

// Options configures Service behaviour
type Options struct {
	SaveMode       SaveMode
	MaxTextBytes   int // 0 = без ограничения
	MaxSaveRetries int // только для SaveModeOptimistic
}

// DefaultOptions returns options matching the plain read-then-write save.
func DefaultOptions() Options {
	return Options{
		SaveMode:       SaveModeUnguarded,
		MaxTextBytes:   0,
		MaxSaveRetries: 3,
	}
}

// Option customizes a Service
type Option func(*Service)

// WithClock sets the timestamp source
func WithClock(c clock.Clock) Option {
	return func(s *Service) {
		s.clock = c
	}
}

// WithRecorder sets the metrics recorder
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		s.recorder = r
	}
}

// WithIDGenerator sets the version id generator
func WithIDGenerator(gen func() string) Option {
	return func(s *Service) {
		s.newID = gen
	}
}

// WithOptions sets service options
func WithOptions(opts Options) Option {
	return func(s *Service) {
		s.opts = opts
	}
}

// Service управляет историей версий поверх storage.VersionStorage
type Service struct {
	storage  storage.VersionStorage
	clock    clock.Clock
	recorder Recorder
	logger   *slog.Logger
	newID    func() string
	opts     Options
	saveMu   sync.Mutex
}

// NewService creates a new version service
func NewService(logger *slog.Logger, st storage.VersionStorage, options ...Option) *Service {
	s := &Service{
		storage:  st,
		clock:    clock.NewMonotonicClock(),
		recorder: noopRecorder{},
		logger:   logger,
		newID:    func() string { return uuid.New().String() },
		opts:     DefaultOptions(),
	}

	for _, opt := range options {
		opt(s)
	}

	return s
}

// Init подготавливает сервис к работе: поднимает нижнюю границу часов
// до timestamp последней сохраненной версии.
func (s *Service) Init(ctx context.Context) error {
	observer, ok := s.clock.(interface{ Observe(time.Time) })
	if !ok {
		return nil
	}

	latest, err := s.latest(ctx)
	if err != nil {
		return err
	}
	if latest != nil {
		observer.Observe(latest.Timestamp)
		s.logger.InfoContext(ctx, "clock seeded from latest version",
			slog.String("version_id", latest.ID),
			slog.Time("timestamp", latest.Timestamp))
	}

	return nil
}

// SaveVersion сохраняет newText как новую версию.
// Baseline - текст версии с максимальным timestamp или "" если история пуста.
// Возвращает ErrInvalidInput для пустого текста и ErrStoreUnavailable при
// ошибке хранилища.
func (s *Service) SaveVersion(ctx context.Context, newText string) (*models.Version, error) {
	if err := validation.ValidateText(newText, s.opts.MaxTextBytes); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	var (
		version *models.Version
		err     error
	)

	switch s.opts.SaveMode {
	case SaveModeSerialized:
		s.saveMu.Lock()
		version, err = s.saveUnguarded(ctx, newText)
		s.saveMu.Unlock()
	case SaveModeOptimistic:
		version, err = s.saveOptimistic(ctx, newText)
	default:
		version, err = s.saveUnguarded(ctx, newText)
	}
	if err != nil {
		return nil, err
	}

	s.recorder.VersionSaved(len(version.AddedWords), len(version.RemovedWords))

	s.logger.InfoContext(ctx, "version saved",
		slog.String("version_id", version.ID),
		slog.Int("added", len(version.AddedWords)),
		slog.Int("removed", len(version.RemovedWords)),
		slog.Int("old_length", version.OldLength),
		slog.Int("new_length", version.NewLength))

	return version, nil
}

func (s *Service) saveUnguarded(ctx context.Context, newText string) (*models.Version, error) {
	latest, err := s.latest(ctx)
	if err != nil {
		return nil, err
	}

	version := s.build(latest, newText)

	err = s.observe("insert", func() error {
		return s.storage.InsertVersion(ctx, version)
	})
	if err != nil {
		return nil, storeError(err)
	}

	return version, nil
}

func (s *Service) saveOptimistic(ctx context.Context, newText string) (*models.Version, error) {
	for attempt := 0; attempt <= s.opts.MaxSaveRetries; attempt++ {
		latest, err := s.latest(ctx)
		if err != nil {
			return nil, err
		}

		expectedID := ""
		if latest != nil {
			expectedID = latest.ID
		}

		version := s.build(latest, newText)

		err = s.observe("insert_if_latest", func() error {
			return s.storage.InsertVersionIfLatest(ctx, version, expectedID)
		})
		if err == nil {
			return version, nil
		}

		if !errors.Is(err, storage.ErrLatestChanged) {
			return nil, storeError(err)
		}

		s.recorder.SaveConflict()
		s.logger.WarnContext(ctx, "latest version changed during save, retrying",
			slog.String("expected_latest_id", expectedID),
			slog.Int("attempt", attempt+1))
	}

	return nil, fmt.Errorf("%w: baseline kept changing after %d retries", ErrConflict, s.opts.MaxSaveRetries)
}

// build собирает версию целиком в памяти до записи в хранилище
func (s *Service) build(latest *models.Version, newText string) *models.Version {
	previousText := ""
	if latest != nil {
		previousText = latest.NewText
	}

	return models.NewVersion(s.newID(), s.clock.Now(), previousText, newText)
}

// latest возвращает последнюю версию или nil, если история пуста
func (s *Service) latest(ctx context.Context) (*models.Version, error) {
	var latest *models.Version

	err := s.observe("get_latest", func() error {
		var err error
		latest, err = s.storage.GetLatestVersion(ctx)
		return err
	})
	if err != nil {
		if errors.Is(err, storage.ErrVersionNotFound) {
			return nil, nil
		}
		return nil, storeError(err)
	}

	return latest, nil
}

// ListVersions возвращает все версии, новые первыми
func (s *Service) ListVersions(ctx context.Context) ([]*models.Version, error) {
	var versions []*models.Version

	err := s.observe("list", func() error {
		var err error
		versions, err = s.storage.ListVersions(ctx)
		return err
	})
	if err != nil {
		return nil, storeError(err)
	}

	for _, v := range versions {
		v.Normalize()
	}

	return versions, nil
}

// GetVersion возвращает версию по id
func (s *Service) GetVersion(ctx context.Context, id string) (*models.Version, error) {
	if err := validation.ValidateVersionID(id); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	var version *models.Version

	err := s.observe("get", func() error {
		var err error
		version, err = s.storage.GetVersion(ctx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, storage.ErrVersionNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeError(err)
	}

	version.Normalize()
	return version, nil
}

// DeleteVersion удаляет версию по id и возвращает удаленную запись.
// Diff соседних версий не пересчитывается.
func (s *Service) DeleteVersion(ctx context.Context, id string) (*models.Version, error) {
	if err := validation.ValidateVersionID(id); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	var version *models.Version

	err := s.observe("delete", func() error {
		var err error
		version, err = s.storage.DeleteVersion(ctx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, storage.ErrVersionNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeError(err)
	}

	s.recorder.VersionDeleted()
	s.logger.InfoContext(ctx, "version deleted", slog.String("version_id", id))

	version.Normalize()
	return version, nil
}

// Ping проверяет доступность хранилища
func (s *Service) Ping(ctx context.Context) error {
	if err := s.storage.Ping(ctx); err != nil {
		return storeError(err)
	}
	return nil
}

func (s *Service) observe(operation string, fn func() error) error {
	start := time.Now()
	err := fn()

	// Отсутствие записи не считается ошибкой хранилища
	recorded := err
	if errors.Is(err, storage.ErrVersionNotFound) || errors.Is(err, storage.ErrLatestChanged) {
		recorded = nil
	}
	s.recorder.StoreOperation(operation, time.Since(start), recorded)

	return err
}

func storeError(err error) error {
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}

type noopRecorder struct{}

func (noopRecorder) VersionSaved(int, int)                       {}
func (noopRecorder) VersionDeleted()                             {}
func (noopRecorder) SaveConflict()                               {}
func (noopRecorder) StoreOperation(string, time.Duration, error) {}
