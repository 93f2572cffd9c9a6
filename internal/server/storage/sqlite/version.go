package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/versioneditor/internal/models"
	"github.com/iudanet/versioneditor/internal/server/storage"
)

const selectVersionColumns = `
	SELECT id, timestamp, previous_text, new_text,
	       added_words, removed_words, old_length, new_length
	FROM versions
`

// querier общий интерфейс *sql.DB и *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// InsertVersion appends a new version
// Returns ErrVersionAlreadyExists if a version with the same ID is stored
func (s *Storage) InsertVersion(ctx context.Context, version *models.Version) error {
	return insertVersion(ctx, s.db, version)
}

// InsertVersionIfLatest appends a new version if the latest stored version
// still has ID expectedLatestID
// Returns ErrLatestChanged otherwise
func (s *Storage) InsertVersionIfLatest(ctx context.Context, version *models.Version, expectedLatestID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	latestID := ""
	latest, err := getLatestVersion(ctx, tx)
	switch {
	case err == nil:
		latestID = latest.ID
	case !errors.Is(err, storage.ErrVersionNotFound):
		return err
	}

	if latestID != expectedLatestID {
		return storage.ErrLatestChanged
	}

	if err := insertVersion(ctx, tx, version); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetLatestVersion retrieves the version with the maximum timestamp
// Returns ErrVersionNotFound if storage is empty
func (s *Storage) GetLatestVersion(ctx context.Context) (*models.Version, error) {
	return getLatestVersion(ctx, s.db)
}

// GetVersion retrieves a single version by ID
// Returns ErrVersionNotFound if version doesn't exist
func (s *Storage) GetVersion(ctx context.Context, id string) (*models.Version, error) {
	row := s.db.QueryRowContext(ctx, selectVersionColumns+`WHERE id = ?`, id)

	version, err := scanVersion(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrVersionNotFound
		}
		return nil, fmt.Errorf("failed to get version: %w", err)
	}

	return version, nil
}

// ListVersions retrieves all versions, newest first
// Returns empty slice if no versions found
func (s *Storage) ListVersions(ctx context.Context) (versions []*models.Version, err error) {
	rows, err := s.db.QueryContext(ctx, selectVersionColumns+`ORDER BY timestamp DESC, seq DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query versions: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	versions = make([]*models.Version, 0)
	for rows.Next() {
		version, err := scanVersion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan version: %w", err)
		}
		versions = append(versions, version)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return versions, nil
}

// DeleteVersion removes version by ID and returns the removed record
// Returns ErrVersionNotFound if version doesn't exist
func (s *Storage) DeleteVersion(ctx context.Context, id string) (*models.Version, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	version, err := scanVersion(tx.QueryRowContext(ctx, selectVersionColumns+`WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrVersionNotFound
		}
		return nil, fmt.Errorf("failed to get version: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM versions WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete version: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return nil, storage.ErrVersionNotFound
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return version, nil
}

func getLatestVersion(ctx context.Context, q querier) (*models.Version, error) {
	row := q.QueryRowContext(ctx, selectVersionColumns+`ORDER BY timestamp DESC, seq DESC LIMIT 1`)

	version, err := scanVersion(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrVersionNotFound
		}
		return nil, fmt.Errorf("failed to get latest version: %w", err)
	}

	return version, nil
}

func insertVersion(ctx context.Context, q querier, version *models.Version) error {
	added, err := encodeWords(version.AddedWords)
	if err != nil {
		return err
	}
	removed, err := encodeWords(version.RemovedWords)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO versions (
			id, timestamp, previous_text, new_text,
			added_words, removed_words, old_length, new_length
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = q.ExecContext(ctx, query,
		version.ID,
		version.Timestamp.UnixNano(),
		version.PreviousText,
		version.NewText,
		added,
		removed,
		version.OldLength,
		version.NewLength,
	)
	if err != nil {
		// Проверяем на duplicate id
		if strings.Contains(err.Error(), "UNIQUE constraint failed: versions.id") {
			return storage.ErrVersionAlreadyExists
		}
		return fmt.Errorf("failed to insert version: %w", err)
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanVersion(row rowScanner) (*models.Version, error) {
	version := &models.Version{}
	var timestamp int64
	var added, removed string

	err := row.Scan(
		&version.ID,
		&timestamp,
		&version.PreviousText,
		&version.NewText,
		&added,
		&removed,
		&version.OldLength,
		&version.NewLength,
	)
	if err != nil {
		return nil, err
	}

	version.Timestamp = time.Unix(0, timestamp).UTC()

	if version.AddedWords, err = decodeWords(added); err != nil {
		return nil, err
	}
	if version.RemovedWords, err = decodeWords(removed); err != nil {
		return nil, err
	}

	return version, nil
}

// Списки слов храним как JSON массив в TEXT колонке
func encodeWords(words []string) (string, error) {
	if words == nil {
		words = []string{}
	}
	data, err := json.Marshal(words)
	if err != nil {
		return "", fmt.Errorf("failed to encode words: %w", err)
	}
	return string(data), nil
}

func decodeWords(data string) ([]string, error) {
	words := make([]string, 0)
	if data == "" {
		return words, nil
	}
	if err := json.Unmarshal([]byte(data), &words); err != nil {
		return nil, fmt.Errorf("failed to decode words: %w", err)
	}
	return words, nil
}
