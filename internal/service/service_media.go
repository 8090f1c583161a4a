package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
)

type mediaService struct {
	objects store.ObjectStorage
	logger  *logger.Logger
}

func NewMediaService(objects store.ObjectStorage, logger *logger.Logger) MediaService {
	return &mediaService{objects: objects, logger: logger}
}

func (m *mediaService) OpenUpload(ctx context.Context, name string) (io.ReadCloser, error) {
	// names are flat; anything that walks directories is unknown
	if name == "" || name != path.Base(name) || strings.HasPrefix(name, ".") {
		return nil, store.ErrObjectNotFound
	}

	body, err := m.objects.Get(ctx, name)
	if errors.Is(err, store.ErrObjectNotFound) {
		return nil, err
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "mediaService.OpenUpload").Str("name", name).Msg("error opening upload")
		return nil, fmt.Errorf("error opening upload %q: %w", name, err)
	}

	return body, nil
}
