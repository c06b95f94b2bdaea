package database

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareDSN(t *testing.T) {
	tests := []struct {
		name        string
		dsn         string
		development bool
		want        string
	}{
		{"url dev", "postgres://u:p@localhost:5432/db", true, "postgres://u:p@localhost:5432/db?sslmode=disable"},
		{"url dev with query", "postgres://u:p@localhost/db?x=1", true, "postgres://u:p@localhost/db?x=1&sslmode=disable"},
		{"url dev sslmode set", "postgres://u:p@localhost/db?sslmode=require", true, "postgres://u:p@localhost/db?sslmode=require"},
		{"keyword dev", "host=localhost dbname=db", true, "host=localhost dbname=db sslmode=disable"},
		{"url prod", "postgresql://u:p@db/db", false, "postgresql://u:p@db/db?prefer_simple_protocol=true"},
		{"url prod already simple", "postgres://db/db?prefer_simple_protocol=true", false, "postgres://db/db?prefer_simple_protocol=true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PrepareDSN(tt.dsn, tt.development))
		})
	}
}

func TestOpenPingFailure(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectClose()

	orig := sqlOpen
	t.Cleanup(func() { sqlOpen = orig })
	sqlOpen = func(driver, dsn string) (*sql.DB, error) {
		assert.Equal(t, "pgx", driver)
		return db, nil
	}

	_, err = Open(context.Background(), "postgres://localhost/db", true, zerolog.New(io.Discard))
	require.ErrorContains(t, err, "ping db")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOpenSuccess(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectPing()

	orig := sqlOpen
	t.Cleanup(func() { sqlOpen = orig })
	var gotDSN string
	sqlOpen = func(driver, dsn string) (*sql.DB, error) {
		gotDSN = dsn
		return db, nil
	}

	got, err := Open(context.Background(), "postgres://localhost/db", false, zerolog.New(io.Discard))
	require.NoError(t, err)
	assert.Same(t, db, got)
	assert.Equal(t, "postgres://localhost/db?prefer_simple_protocol=true", gotDSN)
}

func TestMigrateUsesEmbeddedFS(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	orig := gooseUp
	t.Cleanup(func() { gooseUp = orig })
	var gotDir string
	gooseUp = func(ctx context.Context, d *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		gotDir = dir
		return nil
	}
	require.NoError(t, Migrate(context.Background(), db))
	assert.Equal(t, ".", gotDir)

	gooseUp = func(ctx context.Context, d *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	require.ErrorContains(t, Migrate(context.Background(), db), "run migrations")
}

// TestMigrateIntegration runs the real migrations against TEST_DATABASE_URL.
func TestMigrateIntegration(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set, skip migration integration test")
	}
	ctx := context.Background()
	db, err := Open(ctx, dsn, true, zerolog.New(io.Discard))
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, Migrate(ctx, db))
}
