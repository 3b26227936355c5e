// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// readsync client and the blob server. It is populated by merging values
// from a .env file, environment variables, command-line flags, an optional
// JSON file and finally built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the passphrase, the account credentials and token parameters.
	App App `envPrefix:"APP_"`

	// Storage holds the local SQLite store and the server blob directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the blob server listen address and timeout.
	Server Server `envPrefix:"SERVER_"`

	// Provider selects and configures the client's sync backend.
	Provider Provider `envPrefix:"PROVIDER_"`

	// Workers holds the background sync job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// EnvFilePath is the optional path to a dotenv file loaded before the
	// environment is read. Defaults to ".env" in the working directory.
	// Populated via the ENV_FILE environment variable.
	EnvFilePath string `env:"ENV_FILE"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the local SQLite settings of the client.
	DB DB `envPrefix:"DB_"`

	// Files holds the blob directory of the server.
	Files Files `envPrefix:"FILES_"`
}

// App holds application-level configuration values.
type App struct {
	// Passphrase is the sync passphrase every device of a reader shares.
	// Must be kept confidential.
	// Env: APP_PASSPHRASE
	Passphrase string `env:"PASSPHRASE"`

	// Account names the blob server account all devices of a reader write to.
	// Env: APP_ACCOUNT
	Account string `env:"ACCOUNT"`

	// Password authenticates Account on the blob server. It is unrelated to
	// Passphrase and must differ from it.
	// Env: APP_PASSWORD
	Password string `env:"PASSWORD"`

	// TokenSignKey is the server secret used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an issued JWT stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the blob server.
type Server struct {
	// HTTPAddress is the TCP address the blob server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the local SQLite store.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for the blob server.
type Files struct {
	// BlobDir is the root directory under which every account gets its own
	// folder of blobs.
	// Env: STORAGE_FILES_BLOB_DIR
	BlobDir string `env:"BLOB_DIR"`
}

// Provider configures the sync backend used by the client.
type Provider struct {
	// Type is "folder" or "http".
	// Env: PROVIDER_TYPE
	Type string `env:"TYPE"`

	// FolderPath is the synced folder used by the folder provider.
	// Env: PROVIDER_FOLDER_PATH
	FolderPath string `env:"FOLDER_PATH"`

	// HTTPAddress is the blob server base URL used by the http provider.
	// Env: PROVIDER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: PROVIDER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for the background sync job.
type Workers struct {
	// SyncInterval is the period between two sync cycles.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// RunOnce makes the client exit after a single cycle.
	// Env: WORKERS_RUN_ONCE
	RunOnce bool `env:"RUN_ONCE"`
}

// Provider types.
const (
	ProviderFolder = "folder"
	ProviderHTTP   = "http"
)

// GetStructuredConfig loads and merges the configuration for the current
// process, reading flags from os.Args.
//
// Sources are consulted in the following priority order (a field set by an
// earlier source is never overwritten by a later one):
//  1. Environment variables (after loading the optional .env file)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
