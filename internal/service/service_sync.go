package service

import (
	"context"

	"github.com/MKhiriev/go-diffsync/internal/diffsync"
	"github.com/MKhiriev/go-diffsync/internal/logger"
)

type syncService struct {
	registry *Registry
	shadows  diffsync.ShadowStore
	locks    *keyedMutex

	logger *logger.Logger
}

// NewSyncService returns a [SyncService] over the resources of registry.
//
// Parameters:
//   - registry: the resources nodes may synchronize, filled with [Register].
//   - shadows: store for the shadows of every node. Each node's keys carry a
//     "<nodeID>:" prefix, so nodes never see each other's shadows.
//   - logger: fallback logger; requests log through the logger found in
//     their context.
//
// The returned service is safe for concurrent use.
func NewSyncService(registry *Registry, shadows diffsync.ShadowStore, logger *logger.Logger) SyncService {
	return &syncService{
		registry: registry,
		shadows:  shadows,
		locks:    newKeyedMutex(),
		logger:   logger,
	}
}

// Fetch implements [SyncService].
func (s *syncService) Fetch(ctx context.Context, nodeID, resource string) (any, error) {
	ctx = s.logger.Attach(ctx)

	rs, err := s.registry.find(resource)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(nodeID + "/" + resource)
	defer unlock()

	items, err := rs.fetch(ctx, diffsync.ForNode(s.shadows, nodeID))
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("node_id", nodeID).
			Str("resource", resource).
			Msg("fetch failed")
		return nil, err
	}

	return items, nil
}

// SyncList implements [SyncService]. Exchanges of one node on one resource
// run one at a time; different nodes proceed in parallel.
func (s *syncService) SyncList(ctx context.Context, nodeID, resource string, patches []diffsync.Patch) (diffsync.VersionedPatch, error) {
	ctx = s.logger.Attach(ctx)

	rs, err := s.registry.find(resource)
	if err != nil {
		return diffsync.VersionedPatch{}, err
	}

	unlock := s.locks.Lock(nodeID + "/" + resource)
	defer unlock()

	out, err := rs.syncList(ctx, diffsync.ForNode(s.shadows, nodeID), patches)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("node_id", nodeID).
			Str("resource", resource).
			Msg("list sync failed")
		return diffsync.VersionedPatch{}, err
	}

	return out, nil
}

// SyncOne implements [SyncService]. It shares the node's lock with SyncList.
func (s *syncService) SyncOne(ctx context.Context, nodeID, resource, id string, patches []diffsync.Patch) (diffsync.VersionedPatch, error) {
	ctx = s.logger.Attach(ctx)

	rs, err := s.registry.find(resource)
	if err != nil {
		return diffsync.VersionedPatch{}, err
	}

	unlock := s.locks.Lock(nodeID + "/" + resource)
	defer unlock()

	out, err := rs.syncOne(ctx, diffsync.ForNode(s.shadows, nodeID), id, patches)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("node_id", nodeID).
			Str("resource", resource).
			Str("id", id).
			Msg("entity sync failed")
		return diffsync.VersionedPatch{}, err
	}

	return out, nil
}

// Resources implements [SyncService].
func (s *syncService) Resources() []string {
	return s.registry.Names()
}
