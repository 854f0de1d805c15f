package http

import (
	"strings"

	"github.com/MKhiriev/go-diffsync/internal/config"
	"github.com/MKhiriev/go-diffsync/internal/logger"
	"github.com/MKhiriev/go-diffsync/internal/service"
	"github.com/MKhiriev/go-diffsync/internal/utils"
)

type Handler struct {
	services *service.Services
	hasher   *utils.Hasher
	basePath string

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. Bodies are signed and verified when
// cfg.App.HashKey is set; sync routes live under cfg.Server.BasePath.
func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Str("base_path", cfg.Server.BasePath).Msg("http handler created")
	return &Handler{
		services: services,
		hasher:   utils.NewHasher(cfg.App.HashKey),
		basePath: strings.TrimRight(cfg.Server.BasePath, "/"),
		logger:   logger,
	}
}
