// Package migrations embeds the SQL schemas of the server (PostgreSQL) and
// the client (SQLite) and applies them with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed server/*.sql client/*.sql
var embedMigrations embed.FS

// ErrNilDB is returned when a migration is requested on a nil connection.
var ErrNilDB = errors.New("db is nil")

// MigratePostgres applies the server schema (users, posts).
func MigratePostgres(db *sql.DB) error {
	return migrate(db, goose.DialectPostgres, "server")
}

// MigrateSQLite applies the client schema (the session key/value table).
func MigrateSQLite(db *sql.DB) error {
	return migrate(db, goose.DialectSQLite3, "client")
}

func migrate(db *sql.DB, dialect goose.Dialect, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
