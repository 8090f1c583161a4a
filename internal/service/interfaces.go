package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService issues and validates bearer tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// ValidateToken reports {valid:false} for any rejected token and returns
	// an error only when the user lookup itself failed.
	ValidateToken(ctx context.Context, tokenString string) (models.TokenValidation, error)
	CheckPassword(ctx context.Context, userID int64, password string) (bool, error)
}

// ProfileService manages the caller's own account.
type ProfileService interface {
	GetProfile(ctx context.Context, userID int64) (models.UserProjection, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.UserProjection, error)
	UploadProfilePicture(ctx context.Context, userID int64, upload models.Upload) (string, error)
}

// PostService manages blog posts. A nil image leaves the stored image as is.
type PostService interface {
	ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error)
	GetPost(ctx context.Context, postID int64) (models.Post, error)
	CreatePost(ctx context.Context, post models.Post, image *models.Upload) (models.Post, error)
	UpdatePost(ctx context.Context, userID int64, update models.PostUpdate, image *models.Upload) (models.Post, error)
}

// MediaService serves stored uploads by object name.
type MediaService interface {
	OpenUpload(ctx context.Context, name string) (io.ReadCloser, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
