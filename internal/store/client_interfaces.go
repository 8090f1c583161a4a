package store

import (
	"context"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// KeyValueRepository is the client's persisted key/value storage. The session
// keeps the bearer token under "token" and the cached projection under "user".
type KeyValueRepository interface {
	// Get returns [ErrKeyNotFound] for a missing key.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// Delete removes every given key; missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
}
