package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteKV(t *testing.T) KeyValueRepository {
	t.Helper()
	l := logger.Nop()

	db, err := NewConnectSQLite(context.Background(), config.ClientStorage{DSN: filepath.Join(t.TempDir(), "nested", "client.db")}, l)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate())

	return NewKeyValueRepository(db, l)
}

func TestKeyValueRepository_SQLite(t *testing.T) {
	repo := newSQLiteKV(t)
	ctx := context.Background()

	_, err := repo.Get(ctx, "token")
	require.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, repo.Set(ctx, "token", "abc"))
	require.NoError(t, repo.Set(ctx, "user", `{"id":1}`))

	value, err := repo.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "abc", value)

	// overwrite
	require.NoError(t, repo.Set(ctx, "token", "def"))
	value, err = repo.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "def", value)

	require.NoError(t, repo.Delete(ctx, "token", "user", "missing"))
	_, err = repo.Get(ctx, "token")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	_, err = repo.Get(ctx, "user")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	assert.NoError(t, repo.Delete(ctx))
}

func TestKeyValueRepository_DBErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewKeyValueRepository(&DB{DB: db, dialect: dialectSQLite}, logger.Nop())
	ctx := context.Background()

	mock.ExpectQuery("SELECT value FROM kv").WillReturnError(errors.New("disk I/O error"))
	_, err = repo.Get(ctx, "token")
	assert.ErrorIs(t, err, ErrExecutingQuery)

	mock.ExpectExec("INSERT INTO kv").WillReturnError(errors.New("readonly database"))
	assert.ErrorIs(t, repo.Set(ctx, "token", "x"), ErrExecutingQuery)

	mock.ExpectExec("DELETE FROM kv WHERE key IN \\(\\?,\\?\\)").
		WithArgs("token", "user").
		WillReturnError(errors.New("locked"))
	assert.ErrorIs(t, repo.Delete(ctx, "token", "user"), ErrExecutingQuery)

	require.NoError(t, mock.ExpectationsWereMet())
}
