package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists blog accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID, Role and CreatedAt
	// filled by the database.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByID returns [ErrUserNotFound] when the id is unknown.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	// FindUserByIdentity matches identity against username first, then email.
	FindUserByIdentity(ctx context.Context, identity string) (models.User, error)
	// UpdateUser applies the non-nil fields of update.
	UpdateUser(ctx context.Context, update models.ProfileUpdate) (models.User, error)
	// SetProfilePicture stores the object path of the user's picture.
	SetProfilePicture(ctx context.Context, userID int64, path string) (models.User, error)
}

// PostRepository persists blog posts.
type PostRepository interface {
	ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error)
	GetPost(ctx context.Context, postID int64) (models.Post, error)
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	UpdatePost(ctx context.Context, update models.PostUpdate) (models.Post, error)
}

// ObjectStorage keeps uploaded files (profile pictures, post images).
type ObjectStorage interface {
	// Put stores body under name and returns the public path "/uploads/<name>".
	Put(ctx context.Context, name string, body io.Reader, size int64, contentType string) (string, error)
	// Get opens the object stored under name.
	Get(ctx context.Context, name string) (io.ReadCloser, error)
	// Delete removes the object; a missing object is not an error.
	Delete(ctx context.Context, name string) error
}
