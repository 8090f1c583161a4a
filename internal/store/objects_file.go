package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// fileObjectStorage keeps uploads as plain files under a single directory.
// Used when no MinIO endpoint is configured.
type fileObjectStorage struct {
	dir string
}

// NewFileObjectStorage creates dir when missing and returns storage rooted at it.
func NewFileObjectStorage(dir string) (ObjectStorage, error) {
	if dir == "" {
		return nil, errors.New("object storage dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating object storage dir: %w", err)
	}

	return &fileObjectStorage{dir: dir}, nil
}

// Put writes to a temporary file and renames it so readers never see a
// partially written object.
func (f *fileObjectStorage) Put(ctx context.Context, name string, body io.Reader, _ int64, _ string) (string, error) {
	if err := validateObjectName(name); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(f.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("error creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = io.Copy(tmp, readerWithContext(ctx, body)); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("error writing object %q: %w", name, err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("error closing object %q: %w", name, err)
	}

	if err = os.Rename(tmp.Name(), filepath.Join(f.dir, name)); err != nil {
		return "", fmt.Errorf("error storing object %q: %w", name, err)
	}

	return ObjectPath(name), nil
}

func (f *fileObjectStorage) Get(_ context.Context, name string) (io.ReadCloser, error) {
	if err := validateObjectName(name); err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(f.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrObjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error opening object %q: %w", name, err)
	}

	return file, nil
}

func (f *fileObjectStorage) Delete(_ context.Context, name string) error {
	if err := validateObjectName(name); err != nil {
		return err
	}

	err := os.Remove(filepath.Join(f.dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error deleting object %q: %w", name, err)
	}

	return nil
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

func readerWithContext(ctx context.Context, r io.Reader) io.Reader {
	return ctxReader{ctx: ctx, r: r}
}
