// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks invariants shared by both binaries. Per-binary
// requirements live on the views.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Provider.Type {
	case "", ProviderFolder, ProviderHTTP:
	default:
		return fmt.Errorf("%w: unknown provider type %q", ErrInvalidProviderConfigs, cfg.Provider.Type)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.Passphrase == "" {
		return ErrInvalidAppConfigs
	}

	switch cfg.Provider.Type {
	case ProviderFolder:
		if cfg.Provider.FolderPath == "" {
			return fmt.Errorf("%w: folder path is required", ErrInvalidProviderConfigs)
		}
	case ProviderHTTP:
		p := cfg.Provider
		if p.HTTPAddress == "" || p.RequestTimeout <= 0 {
			return fmt.Errorf("%w: remote address and timeout are required", ErrInvalidProviderConfigs)
		}
		if p.Account == "" || p.Password == "" {
			return fmt.Errorf("%w: account and password are required", ErrInvalidProviderConfigs)
		}
		if p.Password == cfg.App.Passphrase {
			return fmt.Errorf("%w: password must differ from the sync passphrase", ErrInvalidProviderConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown provider type %q", ErrInvalidProviderConfigs, cfg.Provider.Type)
	}

	if !cfg.Workers.RunOnce && cfg.Workers.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.BlobDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.TokenSignKey == "" || cfg.TokenIssuer == "" || cfg.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
