package service

import (
	"context"

	"github.com/MKhiriev/go-diffsync/internal/diffsync"
	"github.com/MKhiriev/go-diffsync/models"
)

// AuthService issues and checks node identities.
type AuthService interface {
	// RegisterNode creates a node with a fresh id and returns it together
	// with a signed token whose subject is the node id.
	RegisterNode(ctx context.Context) (models.Node, models.Token, error)
	// ParseToken validates tokenString. Any failure is reported as
	// [ErrTokenIsExpiredOrInvalid].
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService reports build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// SyncService runs the server side of Differential Synchronization for the
// registered resources. Shadows are kept per node.
type SyncService interface {
	// Fetch returns the whole collection of resource and resets the node's
	// shadow to it. A node calls it before its first exchange and whenever
	// it has lost track of the versions.
	Fetch(ctx context.Context, nodeID, resource string) (any, error)
	// SyncList applies patches to the whole collection of resource, persists
	// the outcome and returns the diff of the persisted collection against
	// the node's shadow.
	SyncList(ctx context.Context, nodeID, resource string, patches []diffsync.Patch) (diffsync.VersionedPatch, error)
	// SyncOne does the same for the single entity id of resource.
	SyncOne(ctx context.Context, nodeID, resource, id string, patches []diffsync.Patch) (diffsync.VersionedPatch, error)
	// Resources lists the registered resource names.
	Resources() []string
}
