package config

import (
	"fmt"
	"time"
)

// ServerConfig is the blob server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	// HTTPAddress is the listen address.
	HTTPAddress string
	// RequestTimeout bounds a single inbound request.
	RequestTimeout time.Duration
	// BlobDir is the root directory of all account folders.
	BlobDir string
	// TokenSignKey signs and verifies bearer tokens.
	TokenSignKey string
	// TokenIssuer is the required "iss" claim.
	TokenIssuer string
	// TokenDuration is the lifetime of an issued token.
	TokenDuration time.Duration
	// Version is reported by /api/version/.
	Version string
}

// GetServerConfig builds and validates the blob server config view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewServerConfig(cfg)
}

// NewServerConfig maps the fields relevant to the blob server and validates
// the resulting [ServerConfig].
func NewServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		BlobDir:        cfg.Storage.Files.BlobDir,
		TokenSignKey:   cfg.App.TokenSignKey,
		TokenIssuer:    cfg.App.TokenIssuer,
		TokenDuration:  cfg.App.TokenDuration,
		Version:        cfg.App.Version,
	}

	return serverCfg, serverCfg.validate()
}
