package diffsync

import (
	"context"

	"github.com/MKhiriev/go-diffsync/models"
)

type nodeStore struct {
	store  ShadowStore
	prefix string
}

// ForNode scopes store to a single remote node by prefixing every key with
// "<nodeID>:".
func ForNode(store ShadowStore, nodeID string) ShadowStore {
	return &nodeStore{store: store, prefix: nodeID + ":"}
}

func (n *nodeStore) GetShadow(ctx context.Context, key string) (models.StoredShadow, bool, error) {
	return n.store.GetShadow(ctx, n.prefix+key)
}

func (n *nodeStore) PutShadow(ctx context.Context, key string, shadow models.StoredShadow) error {
	return n.store.PutShadow(ctx, n.prefix+key, shadow)
}
