package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver (pure Go).
)

const schema = `CREATE TABLE IF NOT EXISTS webappsstore (
	origin TEXT NOT NULL,
	key    TEXT NOT NULL,
	value  TEXT NOT NULL,
	PRIMARY KEY (origin, key)
)`

// SQLite is a KV backed by a single SQLite file, laid out like a browser
// profile's webappsstore: one table, rows keyed by (origin, key).
type SQLite struct {
	db     *sql.DB
	origin string
}

// OpenSQLite opens (creating if needed) the store at path and scopes it to
// origin.
func OpenSQLite(ctx context.Context, path, origin string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	dsn := "file:" + filepath.ToSlash(path) + "?mode=rwc"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	// One connection keeps every statement on the same file handle.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping store: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLite{db: db, origin: origin}, nil
}

// NewSQLite wraps an already-open database. The schema must exist.
func NewSQLite(db *sql.DB, origin string) *SQLite {
	return &SQLite{db: db, origin: origin}
}

// Origin returns the origin this store is scoped to.
func (s *SQLite) Origin() string {
	return s.origin
}

func (s *SQLite) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM webappsstore WHERE origin = ? AND key = ?`,
		s.origin, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLite) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO webappsstore (origin, key, value) VALUES (?, ?, ?)
		 ON CONFLICT (origin, key) DO UPDATE SET value = excluded.value`,
		s.origin, key, value,
	)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// Close releases the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
