package store

import (
	"context"

	"github.com/MKhiriev/go-diffsync/internal/diffsync"
	"github.com/MKhiriev/go-diffsync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalTodoRepository keeps the client's todo list in order.
type LocalTodoRepository interface {
	// FindAll returns the list in its stored order.
	FindAll(ctx context.Context) ([]models.Todo, error)
	// ReplaceAll stores todos as the whole list.
	ReplaceAll(ctx context.Context, todos []models.Todo) error
}

// LocalCredentialsRepository keeps the node identity and token of the client.
type LocalCredentialsRepository interface {
	Save(ctx context.Context, credentials models.Credentials) error
	// Get returns [ErrCredentialsNotFound] before the first Save.
	Get(ctx context.Context) (models.Credentials, error)
}

// LocalPendingRepository keeps the envelopes sent to the server that it has
// not acknowledged yet. They are sent again with every exchange until the
// server's answer shows they arrived.
type LocalPendingRepository interface {
	// Append stores envelope for resource. An envelope with the same
	// ServerVersion replaces the stored one.
	Append(ctx context.Context, resource string, envelope diffsync.VersionedPatch) error
	// List returns the envelopes of resource ordered by ServerVersion.
	List(ctx context.Context, resource string) ([]diffsync.VersionedPatch, error)
	// Acknowledge drops the envelopes of resource with ServerVersion below upTo.
	Acknowledge(ctx context.Context, resource string, upTo int64) error
	// Clear drops every envelope of resource.
	Clear(ctx context.Context, resource string) error
}
