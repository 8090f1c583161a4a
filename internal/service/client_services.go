package service

import (
	"github.com/MKhiriev/go-blog/internal/adapter"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/validators"
)

type ClientServices struct {
	AuthService    ClientAuthService
	ProfileService ClientProfileService
	PostService    ClientPostService
	AppInfoService ClientAppInfoService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, session SessionHolder, logger *logger.Logger) *ClientServices {
	validator := validators.NewValidator()

	return &ClientServices{
		AuthService:    NewClientAuthService(serverAdapter, session, validator, logger),
		ProfileService: NewClientProfileService(serverAdapter, session, validator, logger),
		PostService:    NewClientPostService(serverAdapter, session, validator, logger),
		AppInfoService: NewClientAppInfoService(serverAdapter),
	}
}
