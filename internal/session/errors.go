package session

import "errors"

var (
	ErrEmptyToken       = errors.New("empty session token")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrValidationFailed = errors.New("session validation failed")
	ErrPersistSession   = errors.New("error persisting session")
	ErrLoadSession      = errors.New("error loading persisted session")
)
