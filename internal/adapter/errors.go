package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrTransport wraps failures that never produced an HTTP response.
	ErrTransport = errors.New("transport error")

	ErrInvalidBaseURL = errors.New("invalid adapter http address")
)

// IsAuthRejected reports whether err is an explicit auth rejection by the
// server. It is the only adapter error allowed to end a session.
func IsAuthRejected(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
