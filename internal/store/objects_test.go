package store

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectPathAndName(t *testing.T) {
	assert.Equal(t, "/uploads/a.png", ObjectPath("a.png"))
	assert.Equal(t, "a.png", ObjectName("/uploads/a.png"))
	assert.Equal(t, "a.png", ObjectName("a.png"))
}

func TestFileObjectStorage_PutGetDelete(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewFileObjectStorage(dir)
	require.NoError(t, err)
	ctx := context.Background()

	path, err := storage.Put(ctx, "avatar.png", strings.NewReader("png-bytes"), 9, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/avatar.png", path)

	rc, err := storage.Get(ctx, "avatar.png")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, storage.Delete(ctx, "avatar.png"))
	_, err = storage.Get(ctx, "avatar.png")
	assert.ErrorIs(t, err, ErrObjectNotFound)

	// deleting twice is fine
	assert.NoError(t, storage.Delete(ctx, "avatar.png"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temp files must not be left behind")
}

func TestFileObjectStorage_RejectsTraversal(t *testing.T) {
	storage, err := NewFileObjectStorage(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	for _, name := range []string{"", "..", "../etc/passwd", "a/b.png", `a\b.png`} {
		_, err = storage.Put(ctx, name, strings.NewReader("x"), 1, "")
		assert.ErrorIs(t, err, ErrInvalidObjectName, name)

		_, err = storage.Get(ctx, name)
		assert.ErrorIs(t, err, ErrInvalidObjectName, name)
	}
}

func TestFileObjectStorage_CanceledContext(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewFileObjectStorage(dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = storage.Put(ctx, "a.png", strings.NewReader("x"), 1, "")
	require.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(filepath.Join(dir, "a.png"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestNewObjectStorage_FallsBackToFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")

	storage, err := NewObjectStorage(context.Background(), config.Objects{LocalDir: dir}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &fileObjectStorage{}, storage)
	assert.DirExists(t, dir)
}

func TestNewMinioObjectStorage_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Objects
	}{
		{"no endpoint", config.Objects{AccessKey: "a", SecretKey: "s", Bucket: "b"}},
		{"no credentials", config.Objects{Endpoint: "localhost:9000", Bucket: "b"}},
		{"no bucket", config.Objects{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMinioObjectStorage(tt.cfg)
			assert.Error(t, err)
		})
	}

	storage, err := NewMinioObjectStorage(config.Objects{
		Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s", Bucket: "uploads",
	})
	require.NoError(t, err)
	assert.Equal(t, "uploads", storage.Bucket())

	_, err = storage.Put(context.Background(), "../x", strings.NewReader(""), 0, "")
	assert.ErrorIs(t, err, ErrInvalidObjectName)
}
