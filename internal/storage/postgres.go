package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// Postgres stores values in a single key/value table.
type Postgres struct {
	db *sql.DB
}

// NewPostgres prepares the backing table and returns the store. The DDL
// is idempotent so repeated startups are safe.
func NewPostgres(ctx context.Context, db *sql.DB) (*Postgres, error) {
	query := `
		CREATE TABLE IF NOT EXISTS kv_entries (
			key   TEXT PRIMARY KEY,
			value JSONB NOT NULL
		)
	`

	if _, err := db.ExecContext(ctx, query); err != nil {
		return nil, fmt.Errorf("creating kv table: %w", err)
	}

	return &Postgres{db: db}, nil
}

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte

	err := p.db.QueryRowContext(ctx, "SELECT value FROM kv_entries WHERE key = $1", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("getting %q: %w", key, err)
	}

	return value, true, nil
}

func (p *Postgres) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_entries (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`

	if _, err := p.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("setting %q: %w", key, err)
	}

	return nil
}

func (p *Postgres) Delete(ctx context.Context, key string) error {
	if _, err := p.db.ExecContext(ctx, "DELETE FROM kv_entries WHERE key = $1", key); err != nil {
		return fmt.Errorf("deleting %q: %w", key, err)
	}

	return nil
}

func (p *Postgres) Close() error { return p.db.Close() }
