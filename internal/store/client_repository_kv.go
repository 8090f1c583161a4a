package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-blog/internal/logger"
)

const (
	getValue = `SELECT value FROM kv WHERE key = ?;`

	setValue = `INSERT INTO kv (key, value, updated_at)
    VALUES (?, ?, CURRENT_TIMESTAMP)
    ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`
)

// keyValueRepository is the SQLite-backed [KeyValueRepository] of the client.
type keyValueRepository struct {
	*DB
	logger *logger.Logger
}

// NewKeyValueRepository constructs a [KeyValueRepository] backed by db.
func NewKeyValueRepository(db *DB, logger *logger.Logger) KeyValueRepository {
	return &keyValueRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *keyValueRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.DB.QueryRowContext(ctx, getValue, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "keyValueRepository.Get").Str("key", key).Msg("failed to read key")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (r *keyValueRepository) Set(ctx context.Context, key, value string) error {
	if _, err := r.DB.ExecContext(ctx, setValue, key, value); err != nil {
		r.logger.Err(err).Str("func", "keyValueRepository.Set").Str("key", key).Msg("failed to write key")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *keyValueRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	query, args, err := sq.Delete("kv").Where(sq.Eq{"key": keys}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "keyValueRepository.Delete").Strs("keys", keys).Msg("failed to delete keys")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
