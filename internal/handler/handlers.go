package handler

import (
	"github.com/MKhiriev/go-diffsync/internal/config"
	"github.com/MKhiriev/go-diffsync/internal/handler/http"
	"github.com/MKhiriev/go-diffsync/internal/logger"
	"github.com/MKhiriev/go-diffsync/internal/service"
)

// Handlers groups the transport handlers built by [NewHandlers].
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers of the server.
//
// Parameters:
//   - services: application services the handlers delegate to.
//   - cfg: full configuration; Server.HTTPAddress enables the HTTP handler,
//     App.HashKey turns on body signing.
//   - logger: structured logger passed down to the middleware.
//
// Returns errNoHandlersAreCreated when no transport is configured.
func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg, logger)}, nil
}
