// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-blog/internal/adapter"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

// Persisted storage keys.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// Validator checks a bearer token against the server.
// [adapter.ServerAdapter] satisfies it.
type Validator interface {
	ValidateToken(ctx context.Context, token string) (models.TokenValidation, error)
}

// Holder owns the client session. It is safe for concurrent use.
type Holder struct {
	store     store.KeyValueRepository
	validator Validator
	logger    *logger.Logger

	mu          sync.Mutex
	token       string
	state       models.Session
	subscribers map[int]chan models.Session
	nextSubID   int
	closed      bool

	startOnce sync.Once
}

// New loads the persisted session. Authenticated is true exactly when a token
// is stored. A stored user without a token is removed.
func New(ctx context.Context, kv store.KeyValueRepository, validator Validator, logger *logger.Logger) (*Holder, error) {
	h := &Holder{
		store:       kv,
		validator:   validator,
		logger:      logger,
		subscribers: make(map[int]chan models.Session),
	}

	token, err := h.load(ctx, KeyToken)
	if err != nil {
		return nil, err
	}
	rawUser, err := h.load(ctx, KeyUser)
	if err != nil {
		return nil, err
	}

	if token == "" {
		if rawUser != "" {
			logger.Info().Msg("discarding cached user without a token")
			if err = kv.Delete(ctx, KeyUser); err != nil {
				logger.Err(err).Str("func", "session.New").Msg("error removing orphan user")
			}
		}
		return h, nil
	}

	h.token = token
	h.state = models.Session{Authenticated: true, User: decodeUser(rawUser, logger)}

	return h, nil
}

func (h *Holder) load(ctx context.Context, key string) (string, error) {
	value, err := h.store.Get(ctx, key)
	if errors.Is(err, store.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrLoadSession, key, err)
	}

	return value, nil
}

func decodeUser(raw string, logger *logger.Logger) *models.UserProjection {
	if raw == "" {
		return nil
	}

	var user models.UserProjection
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		logger.Err(err).Str("func", "session.decodeUser").Msg("cached user is not valid JSON; ignoring")
		return nil
	}

	return &user
}

// OnAppStart validates the stored token against the server. Only the first
// call does any work; later calls return nil immediately.
//
// valid:true replaces the cached user with the server projection and persists
// it. valid:false or an auth rejection logs the session out. Any other error
// is returned wrapped in ErrValidationFailed and the session is left as is.
func (h *Holder) OnAppStart(ctx context.Context) error {
	var err error
	h.startOnce.Do(func() {
		err = h.validate(ctx)
	})

	return err
}

func (h *Holder) validate(ctx context.Context) error {
	token := h.Token()
	if token == "" {
		return nil
	}

	result, err := h.validator.ValidateToken(ctx, token)
	switch {
	case adapter.IsAuthRejected(err):
		h.logger.Info().Msg("stored token rejected by server")
		return h.logoutIfCurrent(ctx, token)
	case err != nil:
		h.logger.Err(err).Str("func", "Holder.validate").Msg("token validation failed; keeping session")
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	case !result.Valid:
		h.logger.Info().Msg("stored token is no longer valid")
		return h.logoutIfCurrent(ctx, token)
	}

	return h.acceptValidation(ctx, token, result.User)
}

// acceptValidation applies a positive validation unless the session changed
// while the request was in flight.
func (h *Holder) acceptValidation(ctx context.Context, token string, user *models.UserProjection) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.token != token {
		return nil
	}
	if user == nil {
		user = h.state.User
	}

	h.state = models.Session{Authenticated: true, User: cloneUser(user)}
	h.publishLocked()

	if user == nil {
		return nil
	}

	return h.persistUser(ctx, *user)
}

func (h *Holder) logoutIfCurrent(ctx context.Context, token string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.token != token {
		return nil
	}

	return h.logoutLocked(ctx)
}

// Login stores token and user and marks the session authenticated. It does
// not contact the server. Nothing changes if persisting fails.
func (h *Holder) Login(ctx context.Context, token string, user models.UserProjection) error {
	if token == "" {
		return ErrEmptyToken
	}

	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersistSession, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err = h.store.Set(ctx, KeyToken, token); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistSession, err)
	}
	if err = h.store.Set(ctx, KeyUser, string(rawUser)); err != nil {
		h.restoreTokenLocked(ctx)
		return fmt.Errorf("%w: %w", ErrPersistSession, err)
	}

	h.token = token
	h.state = models.Session{Authenticated: true, User: cloneUser(&user)}
	h.publishLocked()

	return nil
}

// restoreTokenLocked puts the stored token back to the one held in memory
// after a partially persisted login.
func (h *Holder) restoreTokenLocked(ctx context.Context) {
	var err error
	if h.token == "" {
		err = h.store.Delete(ctx, KeyToken)
	} else {
		err = h.store.Set(ctx, KeyToken, h.token)
	}
	if err != nil {
		h.logger.Err(err).Str("func", "Holder.Login").Msg("error restoring stored token")
	}
}

// Logout removes the persisted token and user and clears the session.
// Calling it on a logged-out session leaves the same state. The in-memory
// state is cleared even when the storage delete fails.
func (h *Holder) Logout(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.logoutLocked(ctx)
}

func (h *Holder) logoutLocked(ctx context.Context) error {
	err := h.store.Delete(ctx, KeyToken, KeyUser)
	if err != nil {
		h.logger.Err(err).Str("func", "Holder.logout").Msg("error removing persisted session")
		err = fmt.Errorf("%w: %w", ErrPersistSession, err)
	}

	changed := h.state.Authenticated || h.state.User != nil || h.token != ""
	h.token = ""
	h.state = models.Session{}
	if changed {
		h.publishLocked()
	}

	return err
}

// Reject logs the session out when err is an explicit auth rejection and
// reports whether it did. Other errors are ignored.
func (h *Holder) Reject(ctx context.Context, err error) bool {
	if !adapter.IsAuthRejected(err) {
		return false
	}

	h.logger.Info().Msg("server rejected the session token")
	if logoutErr := h.Logout(ctx); logoutErr != nil {
		h.logger.Err(logoutErr).Str("func", "Holder.Reject").Msg("logout after rejection failed")
	}

	return true
}

// UpdateUser replaces the cached projection of an authenticated session.
func (h *Holder) UpdateUser(ctx context.Context, user models.UserProjection) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.state.Authenticated {
		return ErrNotAuthenticated
	}

	h.state = models.Session{Authenticated: true, User: cloneUser(&user)}
	h.publishLocked()

	return h.persistUser(ctx, user)
}

func (h *Holder) persistUser(ctx context.Context, user models.UserProjection) error {
	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersistSession, err)
	}
	if err = h.store.Set(ctx, KeyUser, string(rawUser)); err != nil {
		h.logger.Err(err).Str("func", "Holder.persistUser").Msg("error persisting user")
		return fmt.Errorf("%w: %w", ErrPersistSession, err)
	}

	return nil
}

// Snapshot returns a copy of the current session.
func (h *Holder) Snapshot() models.Session {
	h.mu.Lock()
	defer h.mu.Unlock()

	return models.Session{Authenticated: h.state.Authenticated, User: cloneUser(h.state.User)}
}

// Token returns the bearer token of the session or an empty string.
func (h *Holder) Token() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.token
}

func cloneUser(user *models.UserProjection) *models.UserProjection {
	if user == nil {
		return nil
	}
	u := *user
	return &u
}
