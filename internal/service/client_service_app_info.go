package service

import (
	"context"

	"github.com/MKhiriev/go-blog/internal/adapter"
)

type clientAppInfoService struct {
	adapter adapter.ServerAdapter
}

func NewClientAppInfoService(serverAdapter adapter.ServerAdapter) ClientAppInfoService {
	return &clientAppInfoService{adapter: serverAdapter}
}

func (a *clientAppInfoService) GetServerVersion(ctx context.Context) (string, error) {
	version, err := a.adapter.GetVersion(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}

	return version, nil
}
