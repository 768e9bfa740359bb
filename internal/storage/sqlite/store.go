// Package sqlite implements the persistence contracts over a SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	apperrors "github.com/louisbranch/tfc.fitness/internal/platform/errors"
	"github.com/louisbranch/tfc.fitness/internal/platform/storage/sqliteschema"
	"github.com/louisbranch/tfc.fitness/internal/storage"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// The exercises table is created last in the schema batch, so its presence
// means the whole batch, seed rows included, already ran.
const sentinelTable = "exercises"

// timeFormat stores start/end times as fixed-width UTC strings so the
// column's lexicographic order matches chronological order.
const timeFormat = "2006-01-02T15:04:05.000Z"

// Store implements storage.Store over a single SQLite database file.
type Store struct {
	sqlDB *sql.DB
}

// Open opens the database file and ensures the schema exists.
//
// A schema failure is fatal for the application: the store cannot serve
// queries against a partially initialized database.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := store.ensureSchema(context.Background()); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return store, nil
}

// Close releases the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// ensureSchema applies the embedded schema batch at most once per fresh file.
func (s *Store) ensureSchema(ctx context.Context) error {
	if err := sqliteschema.Ensure(ctx, s.sqlDB, schemaSQL, sentinelTable); err != nil {
		return apperrors.Wrap(apperrors.CodeSchemaInitFailed, "initialize schema", err)
	}
	return nil
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

func formatTime(value time.Time) string {
	return value.UTC().Format(timeFormat)
}

func parseTime(value string) (time.Time, error) {
	return time.Parse(timeFormat, value)
}

var _ storage.Store = (*Store)(nil)
