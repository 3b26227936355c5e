package service

import (
	"github.com/MKhiriev/readsync/internal/config"
	"github.com/MKhiriev/readsync/internal/logger"
	"github.com/MKhiriev/readsync/internal/store"
	"github.com/MKhiriev/readsync/models"
)

// Services groups the blob server services.
type Services struct {
	AppInfoService AppInfoService
	AuthService    AuthService
	BlobService    BlobService
}

func NewServices(blobs *store.FileBlobStore, cfg config.ServerConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.Version, build, logger)
	if err != nil {
		return nil, err
	}

	users, err := store.NewFileUserRepository(blobs, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AppInfoService: appInfo,
		AuthService:    NewAuthService(users, cfg, logger),
		BlobService:    NewBlobService(blobs, logger),
	}, nil
}
