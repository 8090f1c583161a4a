// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigratePostgres_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// no expectations: goose's first statement fails
	err = MigratePostgres(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	assert.ErrorIs(t, MigratePostgres(db), ErrNilDB)
	assert.ErrorIs(t, MigrateSQLite(db), ErrNilDB)
}

func TestMigrateSQLite_CreatesKVTable(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	require.NoError(t, MigrateSQLite(db))
	// applying twice is a no-op
	require.NoError(t, MigrateSQLite(db))

	_, err = db.Exec(`INSERT INTO kv (key, value) VALUES ('token', 'abc')`)
	require.NoError(t, err)

	var value string
	require.NoError(t, db.QueryRow(`SELECT value FROM kv WHERE key = 'token'`).Scan(&value))
	assert.Equal(t, "abc", value)
}

func TestEmbeddedMigrations_Present(t *testing.T) {
	server, err := fs.Glob(embedMigrations, "server/*.sql")
	require.NoError(t, err)
	assert.Len(t, server, 2)

	client, err := fs.Glob(embedMigrations, "client/*.sql")
	require.NoError(t, err)
	assert.Len(t, client, 1)
}
