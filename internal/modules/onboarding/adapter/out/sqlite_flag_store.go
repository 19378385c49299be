package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	onboardingout "timeaify/internal/modules/onboarding/port/out"
	"timeaify/internal/platform/clock"

	_ "modernc.org/sqlite"
)

type SQLiteFlagStore struct {
	db    *sql.DB
	clock clock.Clock
}

func NewSQLiteFlagStore(dbPath string, clk clock.Clock) (onboardingout.FlagStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteFlagStore{db: db, clock: clk}
	if err := store.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteFlagStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS flags (
  name TEXT PRIMARY KEY,
  value INTEGER NOT NULL,
  updated_at TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create flags table: %w", err)
	}
	return nil
}

func (s *SQLiteFlagStore) Get(ctx context.Context, name string) (bool, error) {
	var value int
	err := s.db.QueryRowContext(ctx, `SELECT value FROM flags WHERE name = ?`, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read flag %s: %w", name, err)
	}
	return value != 0, nil
}

func (s *SQLiteFlagStore) Set(ctx context.Context, name string, value bool) error {
	const stmt = `
INSERT INTO flags (name, value, updated_at)
VALUES (?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
  value=excluded.value,
  updated_at=excluded.updated_at;
`
	v := 0
	if value {
		v = 1
	}
	if _, err := s.db.ExecContext(ctx, stmt, name, v, s.clock.Now().Format("2006-01-02T15:04:05Z07:00")); err != nil {
		return fmt.Errorf("write flag %s: %w", name, err)
	}
	return nil
}

func (s *SQLiteFlagStore) Close() error {
	return s.db.Close()
}
