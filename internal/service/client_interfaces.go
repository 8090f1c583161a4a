package service

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SessionHolder is the part of the client session state the services need.
// It is implemented by *session.Holder.
type SessionHolder interface {
	// Token returns the bearer token or an empty string.
	Token() string
	Snapshot() models.Session
	Login(ctx context.Context, token string, user models.UserProjection) error
	Logout(ctx context.Context) error
	// Reject ends the session when err is an explicit auth rejection.
	Reject(ctx context.Context, err error) bool
	UpdateUser(ctx context.Context, user models.UserProjection) error
}

// ClientAuthService signs the terminal client in and out.
type ClientAuthService interface {
	// Register validates user locally, creates the account and starts a
	// session with the issued token.
	Register(ctx context.Context, user models.User) (models.UserProjection, error)

	// Login validates credentials locally, exchanges them for a token and
	// starts a session.
	Login(ctx context.Context, credentials models.Credentials) (models.UserProjection, error)

	// Logout ends the session. It never calls the server.
	Logout(ctx context.Context) error
}

// ClientProfileService reads and edits the account of the signed-in user.
// Every method returns ErrNotAuthorized without a session.
type ClientProfileService interface {
	GetProfile(ctx context.Context) (models.UserProjection, error)

	// UpdateProfile sends the non-nil fields of update. A new password is
	// first checked against the current one and refused with ErrSamePassword
	// when they match.
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.UserProjection, error)

	// UploadProfilePicture replaces the avatar and returns its new path.
	UploadProfilePicture(ctx context.Context, upload models.Upload) (string, error)
}

// ClientPostService lists, reads and writes blog posts.
type ClientPostService interface {
	ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error)
	GetPost(ctx context.Context, postID int64) (models.Post, error)
	CreatePost(ctx context.Context, post models.Post, image *models.Upload) (models.Post, error)
	UpdatePost(ctx context.Context, update models.PostUpdate, image *models.Upload) (models.Post, error)

	// CanEdit reports whether the signed-in user may edit post. The server
	// has the final word.
	CanEdit(post models.Post) bool
}

// ClientAppInfoService reports the server version.
type ClientAppInfoService interface {
	GetServerVersion(ctx context.Context) (string, error)
}
