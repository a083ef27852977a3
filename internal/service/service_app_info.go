package service

import (
	"context"

	"github.com/MKhiriev/flourish-client/internal/config"
	"github.com/MKhiriev/flourish-client/internal/logger"
	"github.com/MKhiriev/flourish-client/models"
)

type appInfoService struct {
	info models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService returns build metadata, with the configured version
// overriding the linker-injected one when set.
func NewAppInfoService(cfg config.ClientApp, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version != "" {
		build.Version = cfg.Version
	}
	if build.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info:   build,
		logger: logger,
	}, nil
}

func (s *appInfoService) BuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.info
}
