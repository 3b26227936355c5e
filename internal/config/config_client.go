package config

import (
	"fmt"
	"os"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// Passphrase derives the sync encryption key.
	Passphrase string
}

// ClientProvider holds the sync backend settings of the client.
type ClientProvider struct {
	// Type is [ProviderFolder] or [ProviderHTTP].
	Type string
	// FolderPath is the synced folder for the folder provider.
	FolderPath string
	// HTTPAddress is the blob server URL for the http provider.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// Account is the blob server account (the JWT subject).
	Account string
	// Password logs Account in on the blob server.
	Password string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the sync job runs.
	SyncInterval time.Duration
	// RunOnce stops the client after the first cycle.
	RunOnce bool
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App      ClientApp
	Provider ClientProvider
	Storage  ClientStorage
	Workers  ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	return GetClientConfigFromArgs(os.Args[1:])
}

// GetClientConfigFromArgs is [GetClientConfig] with explicit command-line
// flags. The client binary passes the flags left after its subcommand.
func GetClientConfigFromArgs(args []string) (*ClientConfig, error) {
	cfg, err := loadStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewClientConfig(cfg)
}

// NewClientConfig maps the fields relevant to the client runtime and
// validates the resulting [ClientConfig].
func NewClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Passphrase: cfg.App.Passphrase,
		},
		Provider: ClientProvider{
			Type:           cfg.Provider.Type,
			FolderPath:     cfg.Provider.FolderPath,
			HTTPAddress:    cfg.Provider.HTTPAddress,
			RequestTimeout: cfg.Provider.RequestTimeout,
			Account:        cfg.App.Account,
			Password:       cfg.App.Password,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{
			SyncInterval: cfg.Workers.SyncInterval,
			RunOnce:      cfg.Workers.RunOnce,
		},
	}

	return clientCfg, clientCfg.validate()
}
