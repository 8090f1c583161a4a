// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// blog server and the terminal client. It is populated by merging environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, password hashing cost and the version.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database and object storage settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen addresses and request timeout of the backend.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the backend base URL used by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Client holds terminal-client-only settings.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings that control token lifecycle,
// password hashing and versioning.
type App struct {
	// TokenSignKey signs and verifies bearer JWTs.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in and required from every token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the fixed expiry window of issued tokens (e.g. "1h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordHashCost is the bcrypt cost; zero means bcrypt.DefaultCost.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the persistence backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Objects holds the object storage used for profile pictures and post images.
	Objects Objects `envPrefix:"OBJECTS_"`
}

// DB holds connection settings for the relational database.
type DB struct {
	// DSN is the PostgreSQL connection string on the server and the SQLite
	// file path on the client.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Objects configures uploaded file storage. When Endpoint is empty, uploads
// are written to LocalDir on the server's file system instead of MinIO.
type Objects struct {
	// Env: STORAGE_OBJECTS_ENDPOINT
	Endpoint string `env:"ENDPOINT"`
	// Env: STORAGE_OBJECTS_ACCESS_KEY
	AccessKey string `env:"ACCESS_KEY"`
	// Env: STORAGE_OBJECTS_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`
	// Env: STORAGE_OBJECTS_BUCKET
	Bucket string `env:"BUCKET"`
	// Env: STORAGE_OBJECTS_USE_SSL
	UseSSL bool `env:"USE_SSL"`
	// Env: STORAGE_OBJECTS_LOCAL_DIR
	LocalDir string `env:"LOCAL_DIR"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the "host:port" the REST API listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the "host:port" of the gRPC health endpoint. Optional.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds the handling time of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxUploadSize caps multipart bodies in bytes; zero means 5 MiB.
	// Env: SERVER_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`
}

// DefaultMaxUploadSize is used when Server.MaxUploadSize is not set.
const DefaultMaxUploadSize int64 = 5 << 20

// UploadLimit returns MaxUploadSize or [DefaultMaxUploadSize].
func (s Server) UploadLimit() int64 {
	if s.MaxUploadSize <= 0 {
		return DefaultMaxUploadSize
	}
	return s.MaxUploadSize
}

// Adapter holds the client's view of the backend.
type Adapter struct {
	// HTTPAddress is the backend base URL prefixed to every API path.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound client request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Client holds settings only the terminal client reads.
type Client struct {
	// LogPath is the client log file. Empty means next to the executable.
	// Env: CLIENT_LOG_PATH
	LogPath string `env:"LOG_PATH"`
}

// GetStructuredConfig loads, merges and validates the server configuration
// from all sources in this priority order (later non-zero fields win):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := loadStructuredConfig(os.Args[1:])
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
