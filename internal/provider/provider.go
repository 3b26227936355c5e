package provider

import (
	"fmt"

	"github.com/MKhiriev/readsync/internal/config"
	"github.com/MKhiriev/readsync/internal/logger"
)

// New builds the provider selected by cfg.Type.
func New(cfg config.ClientProvider, logger *logger.Logger) (SyncProvider, error) {
	switch cfg.Type {
	case config.ProviderFolder:
		return NewOSFolderProvider(cfg.FolderPath, logger)
	case config.ProviderHTTP:
		return NewHTTPProvider(cfg, logger)
	default:
		return nil, fmt.Errorf("%w: unknown provider type %q", config.ErrInvalidProviderConfigs, cfg.Type)
	}
}
