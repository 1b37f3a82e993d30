package migration

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestEmbeddedMigrations(t *testing.T) {
	names, err := fs.Glob(files, "sql/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	body, err := fs.ReadFile(files, names[0])
	require.NoError(t, err)
	assert.Contains(t, string(body), "-- +goose Up")
	assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS layers")
}

func TestEnsureMigrated(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	t.Run("success", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		gooseUpContext = func(ctx context.Context, _ *sql.DB, d string, opts ...goose.OptionsFunc) error {
			assert.Equal(t, dir, d)
			return nil
		}

		require.NoError(t, EnsureMigrated(context.Background(), db, zap.New(core)))
		assert.Equal(t, 1, logs.FilterMessage("db_migration_success").Len())
	})

	t.Run("failure", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		gooseUpContext = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
			return errors.New("boom")
		}

		err := EnsureMigrated(context.Background(), db, zap.New(core))
		assert.ErrorContains(t, err, "migrate: boom")
		assert.Equal(t, 1, logs.FilterMessage("db_migration_failed").Len())
	})
}
