package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-diffsync/internal/config"
	"github.com/MKhiriev/go-diffsync/internal/logger"
	"github.com/MKhiriev/go-diffsync/internal/service"
)

type App struct {
	services *service.ClientServices
	ui       UI
	workers  config.ClientWorkers
	logger   *logger.Logger
}

// NewApp wires the client application.
//
// Parameters:
//   - services: client services; AuthService and SyncJob are used directly.
//   - ui: the front end, run in the foreground until it returns.
//   - workers: background job settings, SyncInterval for the sync job.
//   - logger: the client logger.
//
// Returns an error when services or ui is nil.
func NewApp(services *service.ClientServices, ui UI, workers config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app: services and ui are required")
	}
	return &App{services: services, ui: ui, workers: workers, logger: logger}, nil
}

// Run registers the node on first start, keeps the todos in sync in the
// background and blocks in the UI. An unreachable server does not stop the
// client: todos are edited offline and exchanged once registration works.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	credentials, err := a.services.AuthService.EnsureRegistered(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("node is not registered, working offline")
	} else {
		a.logger.Info().Str("node_id", credentials.NodeID).Msg("node ready")
	}

	a.services.SyncJob.Start(ctx, a.workers.SyncInterval)
	defer a.services.SyncJob.Stop()

	if err = a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}
