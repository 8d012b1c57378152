package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/eartalk/eartalk-cli/internal/client/migrations"
	"github.com/eartalk/eartalk-cli/internal/dbx"
)

const (
	keyAccessToken = "access_token"
	keySavedAt     = "saved_at"
)

// SQLiteStore keeps the session token in a single-table sqlite database.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Open opens (or creates) the session database at dsn and applies the
// embedded migrations.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate session db: %w", err)
	}

	return db, nil
}

// Get returns the persisted token or "" when absent. Read failures also
// report an absent session, so a corrupted store degrades to logged-out.
func (s *SQLiteStore) Get(ctx context.Context) string {
	var token string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, keyAccessToken).Scan(&token)
	if err != nil {
		return ""
	}
	return token
}

// Token satisfies the API client's token source.
func (s *SQLiteStore) Token(ctx context.Context) string {
	return s.Get(ctx)
}

// Set persists the token and the time it was stored in one transaction.
func (s *SQLiteStore) Set(ctx context.Context, token string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := upsert(ctx, tx, keyAccessToken, token); err != nil {
			return err
		}
		return upsert(ctx, tx, keySavedAt, time.Now().UTC().Format(time.RFC3339))
	})
}

// Clear removes the session. Clearing an absent session is not an error.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func upsert(ctx context.Context, tx dbx.DBTX, key, value string) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("set session[%s]: %w", key, err)
	}
	return nil
}
