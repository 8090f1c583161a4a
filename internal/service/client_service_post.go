package service

import (
	"context"

	"github.com/MKhiriev/go-blog/internal/adapter"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

type clientPostService struct {
	adapter   adapter.ServerAdapter
	session   SessionHolder
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientPostService(serverAdapter adapter.ServerAdapter, session SessionHolder, validator validators.Validator, logger *logger.Logger) ClientPostService {
	return &clientPostService{adapter: serverAdapter, session: session, validator: validator, logger: logger}
}

func (p *clientPostService) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	posts, err := p.adapter.ListPosts(ctx, filter)
	if err != nil {
		p.logger.Err(err).Str("func", "clientPostService.ListPosts").Msg("error listing posts")
		return nil, mapAdapterError(err)
	}

	return posts, nil
}

func (p *clientPostService) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	post, err := p.adapter.GetPost(ctx, postID)
	if err != nil {
		p.logger.Err(err).Str("func", "clientPostService.GetPost").Int64("post_id", postID).Msg("error getting post")
		return models.Post{}, mapAdapterError(err)
	}

	return post, nil
}

func (p *clientPostService) CreatePost(ctx context.Context, post models.Post, image *models.Upload) (models.Post, error) {
	token := p.session.Token()
	if token == "" {
		return models.Post{}, ErrNotAuthorized
	}

	if err := p.validator.Validate(ctx, post); err != nil {
		return models.Post{}, err
	}

	created, err := p.adapter.CreatePost(ctx, token, post, image)
	if err != nil {
		return models.Post{}, p.fail(ctx, "CreatePost", err)
	}

	return created, nil
}

func (p *clientPostService) UpdatePost(ctx context.Context, update models.PostUpdate, image *models.Upload) (models.Post, error) {
	token := p.session.Token()
	if token == "" {
		return models.Post{}, ErrNotAuthorized
	}

	// the image alone is a valid update
	if image == nil || !update.IsEmpty() {
		if err := p.validator.Validate(ctx, update); err != nil {
			return models.Post{}, err
		}
	}

	updated, err := p.adapter.UpdatePost(ctx, token, update, image)
	if err != nil {
		return models.Post{}, p.fail(ctx, "UpdatePost", err)
	}

	return updated, nil
}

func (p *clientPostService) CanEdit(post models.Post) bool {
	current := p.session.Snapshot()
	if !current.Authenticated || current.User == nil {
		return false
	}

	return current.User.ID == post.Author.ID || current.User.Role == models.RoleAdmin
}

func (p *clientPostService) fail(ctx context.Context, op string, err error) error {
	p.logger.Err(err).Str("func", "clientPostService."+op).Msg("server call failed")
	p.session.Reject(ctx, err)
	return mapAdapterError(err)
}
