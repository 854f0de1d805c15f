package service

import (
	"fmt"

	"github.com/MKhiriev/go-diffsync/internal/config"
	"github.com/MKhiriev/go-diffsync/internal/logger"
	"github.com/MKhiriev/go-diffsync/internal/store"
	"github.com/MKhiriev/go-diffsync/internal/validators"
	"github.com/MKhiriev/go-diffsync/models"
)

type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
	SyncService    SyncService
}

// NewServices wires the server services. The todo list is registered as the
// "todos" resource.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	registry := NewRegistry()
	name, err := Register(registry, NewTodoCallback(storages.TodoRepository, validators.NewTodoValidator()), IDEquivalency{})
	if err != nil {
		return nil, fmt.Errorf("register todos: %w", err)
	}
	logger.Info().Str("resource", name).Msg("resource registered")

	return &Services{
		AuthService:    NewAuthService(storages.NodeRepository, cfg.App, logger),
		AppInfoService: appInfo,
		SyncService:    NewSyncService(registry, storages.ShadowStore, logger),
	}, nil
}
