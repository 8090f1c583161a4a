package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts a new account.
//
// Error handling:
//   - unique violation on username → [ErrUsernameTaken]
//   - unique violation on email → [ErrEmailTaken]
//   - any other driver error → wrapped [ErrExecutingQuery]
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.Email, user.FirstName, user.LastName, user.PasswordHash)
	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("error creating user")
		return models.User{}, r.userError(err)
	}

	return created, nil
}

// FindUserByID returns the account with userID or [ErrUserNotFound].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, findUserByID, userID))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).Str("func", "*userRepository.FindUserByID").Int64("user_id", userID).Msg("error finding user")
		}
		return models.User{}, r.userError(err)
	}

	return user, nil
}

// FindUserByIdentity returns the account whose username or email equals
// identity, or [ErrUserNotFound].
func (r *userRepository) FindUserByIdentity(ctx context.Context, identity string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, findUserByIdentity, identity))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).Str("func", "*userRepository.FindUserByIdentity").Msg("error finding user")
		}
		return models.User{}, r.userError(err)
	}

	return user, nil
}

// UpdateUser applies the non-nil fields of update and returns the stored row.
func (r *userRepository) UpdateUser(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(update)
	if err != nil {
		return models.User{}, err
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("user_id", update.UserID).Msg("error updating user")
		return models.User{}, r.userError(err)
	}

	return user, nil
}

// SetProfilePicture stores path as the user's picture.
func (r *userRepository) SetProfilePicture(ctx context.Context, userID int64, path string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, setProfilePicture, userID, path))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetProfilePicture").Int64("user_id", userID).Msg("error setting profile picture")
		return models.User{}, r.userError(err)
	}

	return user, nil
}

func (r *userRepository) userError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrUserNotFound
	}

	if classified := classifyUserError(err); classified != err {
		return classified
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.UserID,
		&user.Username,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.PasswordHash,
		&user.ProfilePicture,
		&user.Role,
		&user.CreatedAt,
	)

	return user, err
}
