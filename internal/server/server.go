package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-diffsync/internal/config"
	"github.com/MKhiriev/go-diffsync/internal/handler"
	"github.com/MKhiriev/go-diffsync/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer builds the HTTP server that serves the sync API.
//
// Parameters:
//   - handlers: transport handlers; handlers.HTTP provides the chi router.
//   - cfg: listen address and per-request timeout.
//   - logger: structured logger used for lifecycle messages.
//
// Returns errNoServersAreCreated when no address is configured or no HTTP
// handler is available.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" || handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT and then shuts down.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run blocks until ctx is done or the listener fails.
func (s *server) run(ctx context.Context) {
	failed := make(chan error, 1)

	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("launching HTTP server")
	go func() {
		failed <- s.httpServer.RunServer()
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		<-failed
		s.logger.Info().Msg("server shutdown gracefully")
	case err := <-failed:
		s.logger.Err(err).Msg("HTTP server stopped")
	}
}
