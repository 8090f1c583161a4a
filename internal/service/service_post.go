package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

const defaultPostsLimit = 50

type postService struct {
	postRepository store.PostRepository
	userRepository store.UserRepository
	validator      validators.Validator
	uploader       *imageUploader

	logger *logger.Logger
}

// NewPostService constructs a PostService storing post images in objects.
func NewPostService(postRepository store.PostRepository, userRepository store.UserRepository, objects store.ObjectStorage, validator validators.Validator, cfg config.Server, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		userRepository: userRepository,
		validator:      validator,
		uploader:       newImageUploader(objects, cfg.UploadLimit()),
		logger:         logger,
	}
}

func (p *postService) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	if filter.Limit == 0 || filter.Limit > defaultPostsLimit {
		filter.Limit = defaultPostsLimit
	}

	posts, err := p.postRepository.ListPosts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}

	return posts, nil
}

func (p *postService) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	post, err := p.postRepository.GetPost(ctx, postID)
	if err != nil {
		return models.Post{}, fmt.Errorf("error getting post: %w", err)
	}

	return post, nil
}

// CreatePost stores post with the optional image. AuthorID must be set by
// the caller from the authenticated user.
func (p *postService) CreatePost(ctx context.Context, post models.Post, image *models.Upload) (models.Post, error) {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, post); err != nil {
		return models.Post{}, err
	}

	if image != nil {
		path, err := p.uploader.put(ctx, *image)
		if err != nil {
			return models.Post{}, err
		}
		post.ImagePath = path
	}

	created, err := p.postRepository.CreatePost(ctx, post)
	if err != nil {
		p.uploader.remove(ctx, post.ImagePath)
		log.Err(err).Int64("author_id", post.AuthorID).Msg("post creation failed")
		return models.Post{}, fmt.Errorf("post creation failed: %w", err)
	}

	return created, nil
}

// UpdatePost applies update on behalf of userID. Only the author of the post
// or an admin may edit it; everyone else gets ErrForbidden.
func (p *postService) UpdatePost(ctx context.Context, userID int64, update models.PostUpdate, image *models.Upload) (models.Post, error) {
	log := logger.FromContext(ctx)

	existing, err := p.postRepository.GetPost(ctx, update.PostID)
	if err != nil {
		return models.Post{}, fmt.Errorf("error getting post: %w", err)
	}

	if err = p.checkCanEdit(ctx, userID, existing); err != nil {
		log.Info().Int64("user_id", userID).Int64("post_id", existing.PostID).Msg("post edit refused")
		return models.Post{}, err
	}

	// the image path is only known after the upload
	check := update
	if image != nil {
		pending := ""
		check.ImagePath = &pending
	}
	if err = p.validator.Validate(ctx, check); err != nil {
		return models.Post{}, err
	}

	if image != nil {
		path, err := p.uploader.put(ctx, *image)
		if err != nil {
			return models.Post{}, err
		}
		update.ImagePath = &path
	}

	updated, err := p.postRepository.UpdatePost(ctx, update)
	if err != nil {
		if image != nil {
			p.uploader.remove(ctx, *update.ImagePath)
		}
		log.Err(err).Int64("post_id", update.PostID).Msg("post update failed")
		return models.Post{}, fmt.Errorf("post update failed: %w", err)
	}

	if image != nil && existing.ImagePath != updated.ImagePath {
		p.uploader.remove(ctx, existing.ImagePath)
	}

	return updated, nil
}

func (p *postService) checkCanEdit(ctx context.Context, userID int64, post models.Post) error {
	if post.AuthorID == userID {
		return nil
	}

	user, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("user search by id failed: %w", err)
	}
	if user.Role != models.RoleAdmin {
		return ErrForbidden
	}

	return nil
}
