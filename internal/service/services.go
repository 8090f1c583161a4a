package service

import (
	"fmt"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/validators"
)

// Services groups the server-side business services.
type Services struct {
	AuthService    AuthService
	ProfileService ProfileService
	PostService    PostService
	MediaService   MediaService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewValidator()

	authService, err := NewAuthService(storages.UserRepository, validator, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    authService,
		ProfileService: NewProfileService(storages.UserRepository, storages.ObjectStorage, validator, cfg, logger),
		PostService:    NewPostService(storages.PostRepository, storages.UserRepository, storages.ObjectStorage, validator, cfg.Server, logger),
		MediaService:   NewMediaService(storages.ObjectStorage, logger),
		AppInfoService: appInfoService,
	}, nil
}
