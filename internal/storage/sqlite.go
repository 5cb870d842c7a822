package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	// Pure-Go SQLite driver.
	_ "modernc.org/sqlite"
)

// SQLiteKV implements KV using a local SQLite database.
type SQLiteKV struct {
	path string
	db   *sql.DB
}

// NewSQLiteKV creates a new SQLite-backed key-value store.
func NewSQLiteKV(path string) *SQLiteKV {
	return &SQLiteKV{path: path}
}

// Open initializes the database connection and applies migrations.
func (s *SQLiteKV) Open() error {
	ctx := context.Background()

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	// SQLite is single-writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("ping database: %w", err)
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	s.db = db

	if err := runMigrations(db); err != nil {
		db.Close()
		return fmt.Errorf("migrate database: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (s *SQLiteKV) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// DB returns the underlying database connection for health checks.
func (s *SQLiteKV) DB() *sql.DB {
	return s.db
}

// Get returns the blob stored under key.
func (s *SQLiteKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM kv WHERE key = ?", key,
	).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	return blob, true, nil
}

// Set stores blob under key, replacing any previous value.
func (s *SQLiteKV) Set(ctx context.Context, key string, blob []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, blob, time.Now())
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}
