package store

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
)

// UploadsPrefix is the public path prefix of stored objects.
const UploadsPrefix = "/uploads/"

// ErrInvalidObjectName is returned for empty names or names that try to
// leave the storage root.
var ErrInvalidObjectName = errors.New("invalid object name")

// ObjectPath returns the public path under which name is served.
func ObjectPath(name string) string {
	return UploadsPrefix + name
}

// ObjectName strips [UploadsPrefix] from a stored path.
func ObjectName(path string) string {
	return strings.TrimPrefix(path, UploadsPrefix)
}

func validateObjectName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return ErrInvalidObjectName
	}

	return nil
}

// NewObjectStorage returns MinIO storage when an endpoint is configured and
// local file storage otherwise.
func NewObjectStorage(ctx context.Context, cfg config.Objects, log *logger.Logger) (ObjectStorage, error) {
	if cfg.Endpoint == "" {
		log.Info().Str("dir", cfg.LocalDir).Msg("using local file object storage")
		return NewFileObjectStorage(cfg.LocalDir)
	}

	minioStorage, err := NewMinioObjectStorage(cfg)
	if err != nil {
		return nil, err
	}
	if err = minioStorage.EnsureBucket(ctx); err != nil {
		return nil, err
	}
	log.Info().Str("endpoint", cfg.Endpoint).Str("bucket", cfg.Bucket).Msg("using minio object storage")

	return minioStorage, nil
}
