package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore persists overrides to a local sqlite database.
type SQLiteStore struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS transaction_overrides (
	transaction_id TEXT PRIMARY KEY,
	category_id    TEXT NOT NULL DEFAULT '',
	source         TEXT NOT NULL DEFAULT '',
	hidden         INTEGER NOT NULL DEFAULT 0
);`

// NewSQLiteStore opens (or creates) the override database at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		return nil, errors.New("dbPath is required")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Get returns the override for a transaction id, or nil when absent.
func (s *SQLiteStore) Get(ctx context.Context, transactionID string) (*Override, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT transaction_id, category_id, source, hidden
		 FROM transaction_overrides WHERE transaction_id = ?`, transactionID)

	var ov Override
	var hidden int
	err := row.Scan(&ov.TransactionID, &ov.CategoryID, &ov.Source, &hidden)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read override: %w", err)
	}
	ov.Hidden = hidden != 0
	return &ov, nil
}

// Save upserts an override.
func (s *SQLiteStore) Save(ctx context.Context, ov Override) error {
	hidden := 0
	if ov.Hidden {
		hidden = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO transaction_overrides (transaction_id, category_id, source, hidden)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(transaction_id) DO UPDATE SET
			category_id = excluded.category_id,
			source = excluded.source,
			hidden = excluded.hidden`,
		ov.TransactionID, ov.CategoryID, ov.Source, hidden)
	if err != nil {
		return fmt.Errorf("failed to save override: %w", err)
	}
	return nil
}

// All returns every stored override keyed by transaction id.
func (s *SQLiteStore) All(ctx context.Context) (map[string]Override, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT transaction_id, category_id, source, hidden FROM transaction_overrides`)
	if err != nil {
		return nil, fmt.Errorf("failed to list overrides: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make(map[string]Override)
	for rows.Next() {
		var ov Override
		var hidden int
		if err := rows.Scan(&ov.TransactionID, &ov.CategoryID, &ov.Source, &hidden); err != nil {
			return nil, fmt.Errorf("failed to scan override: %w", err)
		}
		ov.Hidden = hidden != 0
		out[ov.TransactionID] = ov
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate overrides: %w", err)
	}
	return out, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
