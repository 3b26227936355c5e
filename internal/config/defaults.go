package config

import "time"

const (
	defaultDSN            = "readsync.db"
	defaultServerAddress  = "localhost:8080"
	defaultBlobDir        = "blobs"
	defaultTokenIssuer    = "readsync"
	defaultTokenDuration  = 24 * time.Hour
	defaultRequestTimeout = 30 * time.Second
	defaultSyncInterval   = 5 * time.Minute
	defaultProviderType   = ProviderFolder
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
		},
		Storage: Storage{
			DB:    DB{DSN: defaultDSN},
			Files: Files{BlobDir: defaultBlobDir},
		},
		Server: Server{
			HTTPAddress:    defaultServerAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Provider: Provider{
			Type:           defaultProviderType,
			RequestTimeout: defaultRequestTimeout,
		},
		Workers: Workers{
			SyncInterval: defaultSyncInterval,
		},
	}
}
