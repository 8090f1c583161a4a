// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks registration and login input before any lookup.
	validator validators.Validator

	// hasher produces bcrypt hashes with the configured cost.
	hasher *utils.Hasher

	// dummyHash is compared against when the identity is unknown, so that
	// unknown users and wrong passwords take the same time to reject.
	dummyHash string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) (AuthService, error) {
	hasher := utils.NewHasher(cfg.PasswordHashCost)

	dummyHash, err := hasher.HashPassword("go-blog-dummy-password")
	if err != nil {
		return nil, fmt.Errorf("error preparing password hasher: %w", err)
	}

	return &authService{
		userRepository: userRepository,
		validator:      validator,
		hasher:         hasher,
		dummyHash:      dummyHash,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}, nil
}

// RegisterUser creates a new user account.
//
// The plain-text password is replaced with its bcrypt hash before the
// repository is called and is never returned.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - an error wrapping validators.ErrValidation for malformed input.
//   - store.ErrUsernameTaken / store.ErrEmailTaken on a uniqueness conflict.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, user); err != nil {
		log.Err(err).Str("username", user.Username).Msg("invalid user data provided")
		return models.User{}, err
	}

	hash, err := a.hasher.HashPassword(user.Password)
	if err != nil {
		log.Err(err).Str("func", "authService.RegisterUser").Msg("password hashing failed")
		return models.User{}, err
	}
	user.PasswordHash = hash
	user.Password = ""
	user.Role = models.RoleStandard

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user by username or email.
//
// Unknown identities and wrong passwords both produce ErrInvalidCredentials.
// Storage failures other than "not found" are returned wrapped so they are
// not mistaken for a rejection.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		return models.User{}, err
	}

	foundUser, err := a.userRepository.FindUserByIdentity(ctx, credentials.Identity)
	if errors.Is(err, store.ErrUserNotFound) {
		_ = utils.ComparePassword(a.dummyHash, credentials.Password)
		log.Info().Str("identity", credentials.Identity).Msg("login with unknown identity")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("identity", credentials.Identity).Msg("user search by identity failed")
		return models.User{}, fmt.Errorf("user search by identity failed: %w", err)
	}

	if err = utils.ComparePassword(foundUser.PasswordHash, credentials.Password); err != nil {
		if errors.Is(err, utils.ErrPasswordMismatch) {
			log.Info().Int64("id", foundUser.UserID).Msg("wrong password")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Int64("id", foundUser.UserID).Msg("password comparison failed")
		return models.User{}, err
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed, wrong algorithm)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// ValidateToken checks the token and loads the user it is bound to.
//
// A malformed or expired token, or one whose user no longer exists, yields
// {valid:false} and a nil error. Only storage failures are returned as errors.
func (a *authService) ValidateToken(ctx context.Context, tokenString string) (models.TokenValidation, error) {
	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.TokenValidation{Valid: false}, nil
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		logger.FromContext(ctx).Info().Int64("id", token.UserID).Msg("token bound to a deleted user")
		return models.TokenValidation{Valid: false}, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", token.UserID).Msg("user lookup during token validation failed")
		return models.TokenValidation{}, fmt.Errorf("user lookup failed: %w", err)
	}

	projection := user.Projection()
	return models.TokenValidation{Valid: true, User: &projection}, nil
}

// CheckPassword reports whether password equals the current password of the
// user.
func (a *authService) CheckPassword(ctx context.Context, userID int64, password string) (bool, error) {
	if password == "" {
		return false, validators.ErrEmptyPassword
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("user search by id failed: %w", err)
	}

	err = utils.ComparePassword(user.PasswordHash, password)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, utils.ErrPasswordMismatch):
		return false, nil
	default:
		logger.FromContext(ctx).Err(err).Int64("id", userID).Msg("password comparison failed")
		return false, err
	}
}
