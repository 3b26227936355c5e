package service

import (
	"context"

	"github.com/MKhiriev/readsync/internal/logger"
	"github.com/MKhiriev/readsync/models"
)

type appInfoService struct {
	info models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService reports build. A non-empty version overrides the
// linker-injected one, which lets a deployment pin what clients see.
func NewAppInfoService(version string, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if version == "" {
		version = build.BuildVersion()
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info:   models.NewAppBuildInfo(version, build.BuildDate(), build.BuildCommit()),
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.info.BuildVersion()
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.info
}
