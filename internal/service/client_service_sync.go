package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/MKhiriev/go-diffsync/internal/adapter"
	"github.com/MKhiriev/go-diffsync/internal/diffsync"
	"github.com/MKhiriev/go-diffsync/internal/logger"
	"github.com/MKhiriev/go-diffsync/internal/store"
	"github.com/MKhiriev/go-diffsync/models"
)

type clientSyncService struct {
	todos    store.LocalTodoRepository
	pending  store.LocalPendingRepository
	engine   *diffsync.Sync[[]models.Todo]
	resource string

	adapter adapter.ServerAdapter
	auth    ClientAuthService

	mu     *sync.Mutex
	logger *logger.Logger
}

// NewClientSyncService returns a [ClientSyncService] for the todo list. The
// client counts versions from its own side: envelopes are mirrored on the
// way out and on the way in.
//
// Parameters:
//   - todos: the local list the user edits.
//   - pending: durable envelopes the server has not acknowledged yet.
//   - shadows: the client's shadow store.
//   - serverAdapter: transport to the server.
//   - auth: registers a new node when the server rejects the token.
//   - mu: the mutex shared with the todo service, so that edits never land
//     between the diff and the apply of an exchange.
//   - logger: structured logger for exchange events.
func NewClientSyncService(
	todos store.LocalTodoRepository,
	pending store.LocalPendingRepository,
	shadows diffsync.ShadowStore,
	serverAdapter adapter.ServerAdapter,
	auth ClientAuthService,
	mu *sync.Mutex,
	logger *logger.Logger,
) ClientSyncService {
	return &clientSyncService{
		todos:    todos,
		pending:  pending,
		engine:   diffsync.New[[]models.Todo](shadows, diffsync.WithEmptyPatchVersioning()),
		resource: ResourceName(reflect.TypeFor[models.Todo]()),
		adapter:  serverAdapter,
		auth:     auth,
		mu:       mu,
		logger:   logger,
	}
}

func (s *clientSyncService) Sync(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.syncOnce(ctx)
	switch {
	case err == nil:
		return nil

	case errors.Is(err, adapter.ErrUnauthorized):
		s.logger.Warn().Err(err).Msg("token rejected, registering a new node")
		if _, err = s.auth.Register(ctx); err != nil {
			return err
		}
		err = s.resync(ctx)

	case errors.Is(err, adapter.ErrConflict), errors.Is(err, ErrPatchConflict):
		s.logger.Warn().Err(err).Msg("shadows diverged, fetching the server list")
		err = s.resync(ctx)
	}

	if err != nil {
		s.logger.Err(err).Str("resource", s.resource).Msg("sync failed")
	}

	return mapAdapterError(err)
}

func (s *clientSyncService) ServerVersion(ctx context.Context) (string, error) {
	version, err := s.adapter.GetServerVersion(ctx)
	return version, mapAdapterError(err)
}

func (s *clientSyncService) Status(ctx context.Context) (SyncStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	initialized, err := s.engine.Initialized(ctx)
	if err != nil {
		return SyncStatus{}, err
	}
	if !initialized {
		return SyncStatus{Unsynced: true}, nil
	}

	local, err := s.todos.FindAll(ctx)
	if err != nil {
		return SyncStatus{}, err
	}

	shadow, err := s.engine.Shadow(ctx, local)
	if err != nil {
		return SyncStatus{}, err
	}
	changed, err := s.engine.Changed(ctx, local)
	if err != nil {
		return SyncStatus{}, err
	}
	pending, err := s.pending.List(ctx, s.resource)
	if err != nil {
		return SyncStatus{}, err
	}

	return SyncStatus{
		Initialized:   true,
		Unsynced:      changed || len(pending) > 0,
		Pending:       len(pending),
		ServerVersion: shadow.ServerVersion,
		ClientVersion: shadow.ClientVersion,
	}, nil
}

func (s *clientSyncService) syncOnce(ctx context.Context) error {
	initialized, err := s.engine.Initialized(ctx)
	if err != nil {
		return err
	}

	if !initialized {
		if err = s.bootstrap(ctx); err != nil {
			return err
		}
	}

	return s.exchange(ctx)
}

func (s *clientSyncService) resync(ctx context.Context) error {
	if err := s.bootstrap(ctx); err != nil {
		return err
	}
	return s.exchange(ctx)
}

// bootstrap takes the server's list as the new starting point. Both sides
// reset their shadows to it at 0/0.
func (s *clientSyncService) bootstrap(ctx context.Context) error {
	remote := make([]models.Todo, 0)
	if err := s.adapter.Fetch(ctx, s.resource, &remote); err != nil {
		return fmt.Errorf("fetch %s: %w", s.resource, err)
	}
	if remote == nil {
		remote = make([]models.Todo, 0)
	}

	if err := s.engine.Reset(ctx, remote); err != nil {
		return err
	}
	if err := s.pending.Clear(ctx, s.resource); err != nil {
		return err
	}

	local, err := s.todos.FindAll(ctx)
	if err != nil {
		return err
	}

	// todos the server never saw go out with the next diff
	merged := remote
	for _, todo := range local {
		if todo.ID == 0 {
			merged = append(merged, todo)
		}
	}

	s.logger.Info().
		Str("resource", s.resource).
		Str("shadow", s.engine.Key()).
		Int("remote", len(remote)).
		Int("unsaved", len(merged)-len(remote)).
		Msg("fetched server list")

	return s.todos.ReplaceAll(ctx, merged)
}

func (s *clientSyncService) exchange(ctx context.Context) error {
	local, err := s.todos.FindAll(ctx)
	if err != nil {
		return err
	}

	envelope, err := s.engine.Diff(ctx, local)
	if err != nil {
		return err
	}
	if err = s.pending.Append(ctx, s.resource, envelope); err != nil {
		return err
	}

	pending, err := s.pending.List(ctx, s.resource)
	if err != nil {
		return err
	}

	outgoing := make([]diffsync.VersionedPatch, 0, len(pending))
	for _, p := range pending {
		outgoing = append(outgoing, p.Mirror())
	}

	response, err := s.adapter.Sync(ctx, s.resource, outgoing)
	if err != nil {
		return err
	}
	incoming := response.Mirror()

	// the server has applied every envelope computed before this version
	if err = s.pending.Acknowledge(ctx, s.resource, incoming.ServerVersion); err != nil {
		return err
	}

	patched, err := s.engine.Apply(ctx, local, incoming)
	if err != nil {
		return patchError(err)
	}

	s.logger.Debug().
		Str("resource", s.resource).
		Str("shadow", s.engine.Key()).
		Int("sent", len(outgoing)).
		Int("received_ops", incoming.Patch.Size()).
		Int64("server_version", incoming.ServerVersion).
		Int64("client_version", incoming.ClientVersion).
		Msg("sync exchange applied")

	return s.todos.ReplaceAll(ctx, patched)
}
