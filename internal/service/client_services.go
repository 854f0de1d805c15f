package service

import (
	"sync"

	"github.com/MKhiriev/go-diffsync/internal/adapter"
	"github.com/MKhiriev/go-diffsync/internal/logger"
	"github.com/MKhiriev/go-diffsync/internal/store"
)

type ClientServices struct {
	AuthService ClientAuthService
	TodoService ClientTodoService
	SyncService ClientSyncService
	SyncJob     ClientSyncJob
}

// NewClientServices wires the client services over the local storages. Todo
// edits and sync exchanges share one lock.
func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	var mu sync.Mutex

	authSvc := NewClientAuthService(storages.CredentialsRepository, serverAdapter, logger)
	syncSvc := NewClientSyncService(
		storages.TodoRepository,
		storages.PendingRepository,
		storages.ShadowStore,
		serverAdapter,
		authSvc,
		&mu,
		logger,
	)

	return &ClientServices{
		AuthService: authSvc,
		TodoService: NewClientTodoService(storages.TodoRepository, &mu),
		SyncService: syncSvc,
		SyncJob:     NewClientSyncJob(syncSvc, logger),
	}
}
