package store

import (
	"bytes"
	"context"
	"sync"

	"github.com/MKhiriev/go-diffsync/internal/diffsync"
	"github.com/MKhiriev/go-diffsync/models"
)

type memoryShadowStore struct {
	mu      sync.RWMutex
	shadows map[string]models.StoredShadow
}

// NewMemoryShadowStore returns a map-backed [diffsync.ShadowStore]. Shadows
// are lost on restart, so every node starts over from version 0/0.
func NewMemoryShadowStore() diffsync.ShadowStore {
	return &memoryShadowStore{shadows: make(map[string]models.StoredShadow)}
}

func (m *memoryShadowStore) GetShadow(_ context.Context, key string) (models.StoredShadow, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	shadow, ok := m.shadows[key]
	if !ok {
		return models.StoredShadow{}, false, nil
	}
	shadow.Resource = bytes.Clone(shadow.Resource)

	return shadow, true, nil
}

func (m *memoryShadowStore) PutShadow(_ context.Context, key string, shadow models.StoredShadow) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	shadow.Resource = bytes.Clone(shadow.Resource)
	m.shadows[key] = shadow

	return nil
}
