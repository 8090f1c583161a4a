package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-blog/models"
)

const userColumns = `user_id, username, email, first_name, last_name, password_hash, profile_picture, role, created_at`

const (
	createUser = `INSERT INTO users (username, email, first_name, last_name, password_hash)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING ` + userColumns + `;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE user_id = $1;`

	// a username match wins over an email match of another account
	findUserByIdentity = `SELECT ` + userColumns + `
    FROM users
    WHERE username = $1 OR email = $1
    ORDER BY (username = $1) DESC
    LIMIT 1;`

	setProfilePicture = `UPDATE users
    SET profile_picture = $2
    WHERE user_id = $1
    RETURNING ` + userColumns + `;`

	getPost = `SELECT p.post_id, p.title, p.category, p.content, p.image_path, p.author_id, u.username, p.created_at, p.updated_at
    FROM posts p
    JOIN users u ON u.user_id = p.author_id
    WHERE p.post_id = $1;`

	createPost = `INSERT INTO posts (title, category, content, image_path, author_id)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING post_id, created_at, updated_at;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpdateUserQuery builds a partial UPDATE of users from the non-nil
// fields of update.
func buildUpdateUserQuery(update models.ProfileUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNothingToUpdate
	}

	builder := psql.Update("users")
	if update.FirstName != nil {
		builder = builder.Set("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		builder = builder.Set("last_name", *update.LastName)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if hash := update.PasswordHash(); hash != nil {
		builder = builder.Set("password_hash", *hash)
	}

	query, args, err := builder.
		Where(sq.Eq{"user_id": update.UserID}).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdatePostQuery builds a partial UPDATE of posts. updated_at is always
// refreshed. The returned row is joined with the author in the caller.
func buildUpdatePostQuery(update models.PostUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNothingToUpdate
	}

	builder := psql.Update("posts").Set("updated_at", sq.Expr("NOW()"))
	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Category != nil {
		builder = builder.Set("category", *update.Category)
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}
	if update.ImagePath != nil {
		builder = builder.Set("image_path", *update.ImagePath)
	}

	query, args, err := builder.
		Where(sq.Eq{"post_id": update.PostID}).
		Suffix("RETURNING post_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListPostsQuery selects posts newest first, optionally filtered by
// category and author.
func buildListPostsQuery(filter models.PostFilter) (string, []any, error) {
	builder := psql.
		Select("p.post_id", "p.title", "p.category", "p.content", "p.image_path",
			"p.author_id", "u.username", "p.created_at", "p.updated_at").
		From("posts p").
		Join("users u ON u.user_id = p.author_id").
		OrderBy("p.created_at DESC", "p.post_id DESC")

	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"p.category": filter.Category})
	}
	if filter.AuthorID != 0 {
		builder = builder.Where(sq.Eq{"p.author_id": filter.AuthorID})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
