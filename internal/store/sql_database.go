package store

import (
	"database/sql"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/migrations"
)

type dialect string

const (
	dialectPostgres dialect = "pgx"
	dialectSQLite   dialect = "sqlite3"
)

// DB wraps a *sql.DB with the dialect it was opened with so that [DB.Migrate]
// applies the matching schema.
type DB struct {
	*sql.DB
	dialect dialect
	logger  *logger.Logger
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate() error {
	if db.dialect == dialectSQLite {
		return migrations.MigrateSQLite(db.DB)
	}

	return migrations.MigratePostgres(db.DB)
}
