package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLite stores values in an embedded database file, for single-binary
// deployments and the TUI client.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(ctx context.Context, db *sql.DB) (*SQLite, error) {
	query := `
		CREATE TABLE IF NOT EXISTS kv_entries (
			key   TEXT PRIMARY KEY,
			value BLOB NOT NULL
		)
	`

	if _, err := db.ExecContext(ctx, query); err != nil {
		return nil, fmt.Errorf("creating kv table: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte

	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv_entries WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("getting %q: %w", key, err)
	}

	return value, true, nil
}

func (s *SQLite) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_entries (key, value)
		VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("setting %q: %w", key, err)
	}

	return nil
}

func (s *SQLite) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM kv_entries WHERE key = ?", key); err != nil {
		return fmt.Errorf("deleting %q: %w", key, err)
	}

	return nil
}

func (s *SQLite) Close() error { return s.db.Close() }
