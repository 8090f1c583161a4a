package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

// imageUploader stores uploaded images under generated names.
type imageUploader struct {
	objects store.ObjectStorage
	names   *utils.UUIDGenerator
	maxSize int64
}

func newImageUploader(objects store.ObjectStorage, maxSize int64) *imageUploader {
	return &imageUploader{
		objects: objects,
		names:   utils.NewUUIDGenerator(),
		maxSize: maxSize,
	}
}

// put checks upload and stores it, returning the public object path.
func (u *imageUploader) put(ctx context.Context, upload models.Upload) (string, error) {
	if upload.Body == nil || upload.Size == 0 {
		return "", ErrNoFileUpload
	}
	if !strings.HasPrefix(upload.ContentType, "image/") {
		return "", ErrNotAnImage
	}
	if u.maxSize > 0 && upload.Size > u.maxSize {
		return "", ErrUploadTooBig
	}

	path, err := u.objects.Put(ctx, u.names.ObjectName(upload.Name), upload.Body, upload.Size, upload.ContentType)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	return path, nil
}

// remove deletes a previously stored object. Failures are only logged since
// the owning row no longer references it.
func (u *imageUploader) remove(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := u.objects.Delete(ctx, store.ObjectName(path)); err != nil {
		logger.FromContext(ctx).Err(err).Str("path", path).Msg("error removing stale object")
	}
}
