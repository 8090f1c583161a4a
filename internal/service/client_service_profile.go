package service

import (
	"context"

	"github.com/MKhiriev/go-blog/internal/adapter"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

type clientProfileService struct {
	adapter   adapter.ServerAdapter
	session   SessionHolder
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientProfileService(serverAdapter adapter.ServerAdapter, session SessionHolder, validator validators.Validator, logger *logger.Logger) ClientProfileService {
	return &clientProfileService{adapter: serverAdapter, session: session, validator: validator, logger: logger}
}

func (p *clientProfileService) GetProfile(ctx context.Context) (models.UserProjection, error) {
	token := p.session.Token()
	if token == "" {
		return models.UserProjection{}, ErrNotAuthorized
	}

	user, err := p.adapter.GetProfile(ctx, token)
	if err != nil {
		return models.UserProjection{}, p.fail(ctx, "GetProfile", err)
	}

	if err = p.session.UpdateUser(ctx, user); err != nil {
		p.logger.Err(err).Str("func", "clientProfileService.GetProfile").Msg("error caching profile")
	}

	return user, nil
}

func (p *clientProfileService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.UserProjection, error) {
	token := p.session.Token()
	if token == "" {
		return models.UserProjection{}, ErrNotAuthorized
	}

	if err := p.validator.Validate(ctx, update); err != nil {
		return models.UserProjection{}, err
	}

	if update.NewPassword != nil {
		isSame, err := p.adapter.CheckPassword(ctx, token, *update.NewPassword)
		if err != nil {
			return models.UserProjection{}, p.fail(ctx, "UpdateProfile", err)
		}
		if isSame {
			return models.UserProjection{}, ErrSamePassword
		}
	}

	user, err := p.adapter.UpdateProfile(ctx, token, update)
	if err != nil {
		return models.UserProjection{}, p.fail(ctx, "UpdateProfile", err)
	}

	if err = p.session.UpdateUser(ctx, user); err != nil {
		p.logger.Err(err).Str("func", "clientProfileService.UpdateProfile").Msg("error caching profile")
	}

	return user, nil
}

func (p *clientProfileService) UploadProfilePicture(ctx context.Context, upload models.Upload) (string, error) {
	token := p.session.Token()
	if token == "" {
		return "", ErrNotAuthorized
	}
	if upload.Body == nil {
		return "", ErrNoFileUpload
	}

	path, err := p.adapter.UploadProfilePicture(ctx, token, upload)
	if err != nil {
		return "", p.fail(ctx, "UploadProfilePicture", err)
	}

	user := p.session.Snapshot().User
	if user != nil {
		user.ProfilePicture = path
		if err = p.session.UpdateUser(ctx, *user); err != nil {
			p.logger.Err(err).Str("func", "clientProfileService.UploadProfilePicture").Msg("error caching profile")
		}
	}

	return path, nil
}

// fail ends the session on an auth rejection and maps err.
func (p *clientProfileService) fail(ctx context.Context, op string, err error) error {
	p.logger.Err(err).Str("func", "clientProfileService."+op).Msg("server call failed")
	p.session.Reject(ctx, err)
	return mapAdapterError(err)
}
