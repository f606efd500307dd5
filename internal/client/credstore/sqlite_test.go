package credstore

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/bethub/admincli/internal/client/models"
	"github.com/bethub/admincli/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "credentials.db")
	s, err := Open(context.Background(), dsn, testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testProfile() *models.Profile {
	return &models.Profile{
		ID:          "u-1",
		Name:        "Admin",
		Email:       "a@b.com",
		Balance:     decimal.NewFromInt(250),
		Verified:    true,
		LastLoginAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSetSession_ThenRead(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetSession(ctx, "tok123", testProfile()))

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok123", tok)

	p, err := s.Profile(ctx)
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Equal(t, "a@b.com", p.Email)
	require.True(t, p.Balance.Equal(decimal.NewFromInt(250)))
}

func TestSetSession_OverwritesPrevious(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetSession(ctx, "old", testProfile()))

	newProfile := testProfile()
	newProfile.Email = "new@b.com"
	require.NoError(t, s.SetSession(ctx, "new", newProfile))

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "new", tok)

	p, err := s.Profile(ctx)
	require.NoError(t, err)
	require.Equal(t, "new@b.com", p.Email)
}

func TestRead_EmptyStore_Absent(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "", tok)

	p, err := s.Profile(ctx)
	require.NoError(t, err)
	require.Nil(t, p)
}

func TestClear_RemovesBothAndIsIdempotent(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetSession(ctx, "tok123", testProfile()))
	require.NoError(t, s.Clear(ctx))

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "", tok)

	p, err := s.Profile(ctx)
	require.NoError(t, err)
	require.Nil(t, p)

	// second clear on an already empty store must not fail
	require.NoError(t, s.Clear(ctx))
}

func TestProfile_CorruptValueReadsAsAbsent(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	_, err := s.db.Exec(`INSERT INTO credentials(key, value) VALUES ('profile', 'not-json{')`)
	require.NoError(t, err)

	p, err := s.Profile(ctx)
	require.NoError(t, err)
	require.Nil(t, p)
}

func TestRead_ClosedDBReadsAsAbsent(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetSession(ctx, "tok123", testProfile()))
	require.NoError(t, s.db.Close())

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "", tok)

	p, err := s.Profile(ctx)
	require.NoError(t, err)
	require.Nil(t, p)
}

func TestWrite_ClosedDBPropagatesError(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.db.Close())

	err := s.SetSession(ctx, "tok123", testProfile())
	require.Error(t, err)
}
