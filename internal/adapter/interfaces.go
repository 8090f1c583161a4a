// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the blog server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services and the session holder from the underlying protocol. The package
// ships an HTTP/REST implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling. [ErrUnauthorized] is the only auth rejection; every other error is
// a transport failure and must not be treated as one.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the blog server.
// Authenticated calls take the bearer token explicitly; the adapter keeps no
// session state of its own.
type ServerAdapter interface {
	// Register creates an account and returns the issued token with the
	// account projection.
	Register(ctx context.Context, user models.User) (models.AuthResponse, error)

	// Login exchanges credentials for a token. Wrong credentials come back
	// as [ErrUnauthorized].
	Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)

	// ValidateToken asks the server whether token is still accepted.
	// A rejected token is reported as {valid:false} with a nil error.
	ValidateToken(ctx context.Context, token string) (models.TokenValidation, error)

	// CheckPassword reports whether password equals the current one.
	CheckPassword(ctx context.Context, token, password string) (bool, error)

	// GetProfile fetches the projection of the token owner.
	GetProfile(ctx context.Context, token string) (models.UserProjection, error)

	// UpdateProfile sends the non-nil fields of update.
	UpdateProfile(ctx context.Context, token string, update models.ProfileUpdate) (models.UserProjection, error)

	// UploadProfilePicture sends upload as the multipart "profilePicture" field
	// and returns the stored path.
	UploadProfilePicture(ctx context.Context, token string, upload models.Upload) (string, error)

	ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error)
	GetPost(ctx context.Context, postID int64) (models.Post, error)
	CreatePost(ctx context.Context, token string, post models.Post, image *models.Upload) (models.Post, error)
	UpdatePost(ctx context.Context, token string, update models.PostUpdate, image *models.Upload) (models.Post, error)

	// GetVersion returns the version reported by the server.
	GetVersion(ctx context.Context) (string, error)
}
