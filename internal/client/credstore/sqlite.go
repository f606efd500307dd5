package credstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/bethub/admincli/internal/client/migrations"
	"github.com/bethub/admincli/internal/client/models"
	"github.com/bethub/admincli/internal/dbx"
	"github.com/bethub/admincli/internal/logging"
)

// SQLiteStore keeps credentials in a local SQLite database so a session
// survives restarts of the client.
type SQLiteStore struct {
	db  *sql.DB
	log logging.Logger
}

// Open opens (creating if needed) the credentials database at dsn and runs
// pending migrations.
func Open(ctx context.Context, dsn string, log logging.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open credentials db: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate credentials db: %w", err)
	}

	return &SQLiteStore{db: db, log: log}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// SetSession upserts both entries in a single transaction so a failed write
// never leaves a token without its profile or vice versa.
func (s *SQLiteStore) SetSession(ctx context.Context, token string, profile *models.Profile) error {
	encoded, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := upsert(ctx, tx, keyToken, []byte(token)); err != nil {
			return err
		}
		return upsert(ctx, tx, keyProfile, encoded)
	})
}

func upsert(ctx context.Context, tx dbx.DBTX, key string, value []byte) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set credentials[%s]: %w", key, err)
	}
	return nil
}

// Token returns the stored token, or "" when absent. Read failures are
// logged and read as absent.
func (s *SQLiteStore) Token(ctx context.Context) (string, error) {
	value, err := s.get(ctx, keyToken)
	if err != nil {
		s.log.Warn(ctx, "credentials read failed, treating token as absent", "err", err)
		return "", nil
	}
	return string(value), nil
}

// Profile returns the stored snapshot, or nil when absent. A corrupt stored
// value is logged and read as absent rather than failing the caller.
func (s *SQLiteStore) Profile(ctx context.Context) (*models.Profile, error) {
	value, err := s.get(ctx, keyProfile)
	if err != nil {
		s.log.Warn(ctx, "credentials read failed, treating profile as absent", "err", err)
		return nil, nil
	}
	if value == nil {
		return nil, nil
	}

	var p models.Profile
	if err := json.Unmarshal(value, &p); err != nil {
		s.log.Warn(ctx, "stored profile is unreadable, treating as absent", "err", err)
		return nil, nil
	}
	return &p, nil
}

func (s *SQLiteStore) get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get credentials[%s]: %w", key, err)
	}
	return value, nil
}

// Clear removes all credential rows. Safe to call on an empty store.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM credentials`)
	if err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
