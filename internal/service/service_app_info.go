package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-diffsync/internal/config"
	"github.com/MKhiriev/go-diffsync/internal/logger"
	"github.com/MKhiriev/go-diffsync/models"
)

type appInfoService struct {
	version string
	build   models.AppBuildInfo
}

// NewAppInfoService reports the linker supplied build version, or
// cfg.Version for builds without one. ErrVersionIsNotSpecified is returned
// when neither is set.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if build.HasVersion() {
		version = build.BuildVersion()
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Info().
		Str("version", version).
		Str("build_date", build.BuildDate()).
		Str("build_commit", build.BuildCommit()).
		Msg("app info")

	return &appInfoService{version: version, build: build}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.version
}
