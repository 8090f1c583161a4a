package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

type profileService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	hasher         *utils.Hasher
	uploader       *imageUploader

	logger *logger.Logger
}

// NewProfileService constructs a ProfileService storing pictures in objects.
func NewProfileService(userRepository store.UserRepository, objects store.ObjectStorage, validator validators.Validator, cfg config.StructuredConfig, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: userRepository,
		validator:      validator,
		hasher:         utils.NewHasher(cfg.App.PasswordHashCost),
		uploader:       newImageUploader(objects, cfg.Server.UploadLimit()),
		logger:         logger,
	}
}

// GetProfile returns the projection of the user or store.ErrUserNotFound.
func (p *profileService) GetProfile(ctx context.Context, userID int64) (models.UserProjection, error) {
	user, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.UserProjection{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user.Projection(), nil
}

// UpdateProfile applies the non-nil fields of update. A new password is
// hashed before it reaches the repository.
func (p *profileService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.UserProjection, error) {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, update); err != nil {
		return models.UserProjection{}, err
	}

	if update.NewPassword != nil {
		hash, err := p.hasher.HashPassword(*update.NewPassword)
		if err != nil {
			log.Err(err).Str("func", "profileService.UpdateProfile").Msg("password hashing failed")
			return models.UserProjection{}, err
		}
		update.SetPasswordHash(hash)
		update.NewPassword = nil
	}

	user, err := p.userRepository.UpdateUser(ctx, update)
	if err != nil {
		log.Err(err).Int64("id", update.UserID).Msg("profile update failed")
		return models.UserProjection{}, fmt.Errorf("profile update failed: %w", err)
	}

	return user.Projection(), nil
}

// UploadProfilePicture stores the picture and links it to the user. The
// previous picture is removed once the new one is linked.
func (p *profileService) UploadProfilePicture(ctx context.Context, userID int64, upload models.Upload) (string, error) {
	log := logger.FromContext(ctx)

	current, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("user search by id failed: %w", err)
	}

	path, err := p.uploader.put(ctx, upload)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("profile picture upload failed")
		return "", err
	}

	if _, err = p.userRepository.SetProfilePicture(ctx, userID, path); err != nil {
		p.uploader.remove(ctx, path)
		log.Err(err).Int64("id", userID).Msg("error saving profile picture path")
		return "", fmt.Errorf("error saving profile picture path: %w", err)
	}

	p.uploader.remove(ctx, current.ProfilePicture)

	return path, nil
}
