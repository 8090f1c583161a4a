package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
)

// Storages groups the server-side repositories and the object storage.
type Storages struct {
	UserRepository UserRepository
	PostRepository PostRepository
	ObjectStorage  ObjectStorage

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and prepares object
// storage.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	objects, err := NewObjectStorage(ctx, cfg.Objects, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("object storage error: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		PostRepository: NewPostRepository(db, logger),
		ObjectStorage:  objects,
		db:             db,
	}, nil
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
