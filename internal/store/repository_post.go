// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
	"github.com/jackc/pgerrcode"
)

type postRepository struct {
	*DB
	logger *logger.Logger
}

// NewPostRepository constructs a [PostRepository] backed by db.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		DB:     db,
		logger: logger,
	}
}

// ListPosts returns the posts matching filter, newest first.
func (p *postRepository) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPostsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "postRepository.ListPosts").Msg("failed to create query")
		return nil, err
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "postRepository.ListPosts").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, 16)
	for rows.Next() {
		post, scanErr := scanPost(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "postRepository.ListPosts").Int("iteration", len(posts)).Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "postRepository.ListPosts").Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

// GetPost returns the post with postID or [ErrPostNotFound].
func (p *postRepository) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	post, err := scanPost(p.DB.QueryRowContext(ctx, getPost, postID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "postRepository.GetPost").Int64("post_id", postID).Msg("failed to get post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return post, nil
}

// CreatePost inserts post and returns it as stored, author included.
// A missing author yields [ErrUserNotFound].
func (p *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	row := p.DB.QueryRowContext(ctx, createPost, post.Title, post.Category, post.Content, post.ImagePath, post.AuthorID)
	if err := row.Scan(&post.PostID, &post.CreatedAt, &post.UpdatedAt); err != nil {
		log.Err(err).Str("func", "postRepository.CreatePost").Int64("author_id", post.AuthorID).Msg("failed to create post")
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Post{}, ErrUserNotFound
		}
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return p.GetPost(ctx, post.PostID)
}

// UpdatePost applies the non-nil fields of update and returns the stored post.
func (p *postRepository) UpdatePost(ctx context.Context, update models.PostUpdate) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePostQuery(update)
	if err != nil {
		return models.Post{}, err
	}

	var postID int64
	err = p.DB.QueryRowContext(ctx, query, args...).Scan(&postID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "postRepository.UpdatePost").Int64("post_id", update.PostID).Msg("failed to update post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return p.GetPost(ctx, postID)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (models.Post, error) {
	var post models.Post
	err := row.Scan(
		&post.PostID,
		&post.Title,
		&post.Category,
		&post.Content,
		&post.ImagePath,
		&post.AuthorID,
		&post.Author.Username,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	post.Author.ID = post.AuthorID

	return post, err
}
