// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Storage drivers accepted by [Storage.Driver].
const (
	DriverDynamoDB = "dynamodb"
	DriverMemory   = "memory"
)

// StructuredConfig is the top-level configuration container for the
// go-item-keeper server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token, password hashing, debug and logging settings.
	App App `envPrefix:"APP_"`

	// Server holds the listen address, timeouts and CORS origins.
	Server Server `envPrefix:"SERVER_"`

	// Storage selects the store driver and holds the DynamoDB settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the settings of the command-line API client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control security,
// token lifecycle and diagnostics.
type App struct {
	// TokenSignKey is the secret key used to sign and verify access tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenSigningAlgorithm is one of HS256, HS384 or HS512.
	// Env: APP_TOKEN_SIGNING_ALGORITHM
	TokenSigningAlgorithm string `env:"TOKEN_SIGNING_ALGORITHM"`

	// TokenDuration specifies how long an access token remains valid after
	// issuance (e.g. "1h", "30m"). Zero issues tokens without expiry.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordHashKey is the HMAC pepper mixed into every password before
	// bcrypt hashing. Must be kept confidential.
	// Env: APP_PASSWORD_HASH_KEY
	PasswordHashKey string `env:"PASSWORD_HASH_KEY"`

	// PasswordHashCost is the bcrypt work factor. Zero means bcrypt.DefaultCost.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// Debug exposes unexpected error messages and types in 500 responses.
	// Env: APP_DEBUG
	Debug bool `env:"DEBUG"`

	// LogLevel is a zerolog level name. Defaults to "debug" in debug mode
	// and to "info" otherwise.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins lists the origins accepted by the CORS middleware.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Storage groups the persistence settings.
type Storage struct {
	// Driver is either "dynamodb" or "memory".
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// DynamoDB holds the table and connection settings of the dynamodb driver.
	DynamoDB DynamoDB `envPrefix:"DYNAMODB_"`
}

// DynamoDB holds connection settings and table names for the DynamoDB store.
type DynamoDB struct {
	// Region is the AWS region of the tables.
	// Env: STORAGE_DYNAMODB_REGION
	Region string `env:"REGION"`

	// Endpoint overrides the service endpoint, e.g. "http://localhost:8000"
	// for DynamoDB Local. Empty uses the regional AWS endpoint.
	// Env: STORAGE_DYNAMODB_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// AccessKeyID and SecretAccessKey are optional static credentials.
	// When empty the default AWS credential chain is used.
	// Env: STORAGE_DYNAMODB_ACCESS_KEY_ID, STORAGE_DYNAMODB_SECRET_ACCESS_KEY
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`

	// Env: STORAGE_DYNAMODB_USERS_TABLE
	UsersTable string `env:"USERS_TABLE"`
	// Env: STORAGE_DYNAMODB_ITEMS_TABLE
	ItemsTable string `env:"ITEMS_TABLE"`

	// UsernameIndex is the secondary index of the users table keyed by username.
	// Env: STORAGE_DYNAMODB_USERNAME_INDEX
	UsernameIndex string `env:"USERNAME_INDEX"`

	// OwnerIndex is the secondary index of the items table keyed by owner_id.
	// Env: STORAGE_DYNAMODB_OWNER_INDEX
	OwnerIndex string `env:"OWNER_INDEX"`
}

// Adapter holds settings of the outbound HTTP adapter used by the client.
type Adapter struct {
	// HTTPAddress is the base URL or host:port of the go-item-keeper server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is a previously issued access token sent as a bearer credential.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources. For every field the first source that sets it
// wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
