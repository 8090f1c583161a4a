package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/adapter"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

type clientAuthService struct {
	adapter   adapter.ServerAdapter
	session   SessionHolder
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, session SessionHolder, validator validators.Validator, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, session: session, validator: validator, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) (models.UserProjection, error) {
	if err := a.validator.Validate(ctx, user); err != nil {
		return models.UserProjection{}, err
	}

	authResponse, err := a.adapter.Register(ctx, user)
	if err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.Register").Str("username", user.Username).Msg("registration failed")
		return models.UserProjection{}, mapAdapterError(err)
	}

	return a.startSession(ctx, authResponse)
}

func (a *clientAuthService) Login(ctx context.Context, credentials models.Credentials) (models.UserProjection, error) {
	if err := a.validator.Validate(ctx, credentials); err != nil {
		return models.UserProjection{}, err
	}

	authResponse, err := a.adapter.Login(ctx, credentials)
	if err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.Login").Msg("login failed")
		return models.UserProjection{}, mapAdapterError(err)
	}

	return a.startSession(ctx, authResponse)
}

func (a *clientAuthService) startSession(ctx context.Context, authResponse models.AuthResponse) (models.UserProjection, error) {
	if err := a.session.Login(ctx, authResponse.Token, authResponse.User); err != nil {
		return models.UserProjection{}, fmt.Errorf("error starting session: %w", err)
	}

	a.logger.Info().Str("username", authResponse.User.Username).Msg("signed in")
	return authResponse.User, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}
