// Package credstore persists the client's bearer credential across process
// restarts in a small local sqlite database. It is the only durable state
// the client keeps: one key-value slot read once at startup and written on
// every credential change.
package credstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/dpetrovs/ember/internal/client/credstore/migrations"
	"github.com/dpetrovs/ember/internal/dbx"
)

const credentialKey = "credential"

// Store is the persisted-credential accessor the session store depends on.
type Store interface {
	// Credential returns the stored token, or "" when absent.
	Credential(ctx context.Context) (string, error)
	// SetCredential stores the token, replacing any previous value.
	SetCredential(ctx context.Context, token string) error
	// Clear removes all stored credentials.
	Clear(ctx context.Context) error
}

// SQLiteStore implements Store on a local sqlite database.
type SQLiteStore struct {
	db dbx.DBTX
}

// NewSQLiteStore wraps an already-migrated database handle.
func NewSQLiteStore(db dbx.DBTX) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Open opens (creating if needed) the credential database at dsn and runs
// pending migrations.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open credential db: %w", err)
	}
	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate credential db: %w", err)
	}
	return db, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

func (s *SQLiteStore) Credential(ctx context.Context) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM credentials WHERE key = ?`, credentialKey).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get credential: %w", err)
	}
	return value, nil
}

func (s *SQLiteStore) SetCredential(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, credentialKey, token)
	if err != nil {
		return fmt.Errorf("failed to set credential: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM credentials`)
	if err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}

var _ Store = (*SQLiteStore)(nil)
