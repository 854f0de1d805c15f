package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-diffsync/models"
)

// ClientAuthService manages the node identity of the client.
type ClientAuthService interface {
	// EnsureRegistered loads the saved credentials and hands the token to the
	// server adapter. A client without credentials registers a new node
	// first and saves what the server returned.
	EnsureRegistered(ctx context.Context) (models.Credentials, error)

	// Register always registers a new node and replaces the saved
	// credentials. Used when the server stops accepting the old token.
	Register(ctx context.Context) (models.Credentials, error)
}

// ClientTodoService edits the local todo list. Every method returns the list
// as stored after the change. Edits and synchronization never interleave.
type ClientTodoService interface {
	List(ctx context.Context) ([]models.Todo, error)
	// Add appends a todo. Its id stays 0 until the server assigns one.
	Add(ctx context.Context, description string) ([]models.Todo, error)
	Edit(ctx context.Context, index int, description string) ([]models.Todo, error)
	Toggle(ctx context.Context, index int) ([]models.Todo, error)
	Remove(ctx context.Context, index int) ([]models.Todo, error)
	RemoveCompleted(ctx context.Context) ([]models.Todo, error)
	// ToggleAll completes every todo, or reopens all of them when all are
	// already complete.
	ToggleAll(ctx context.Context) ([]models.Todo, error)
}

// ClientSyncService exchanges the local todo list with the server.
type ClientSyncService interface {
	// Sync runs one exchange: the local changes since the last exchange go
	// out together with every envelope the server has not acknowledged, and
	// the server's answer is applied to the local list.
	//
	// A client without a shadow, or one the server no longer recognizes,
	// fetches the server's list first. Todos never saved on the server are
	// kept across such a fetch.
	Sync(ctx context.Context) error

	// ServerVersion reports the version of the server application.
	ServerVersion(ctx context.Context) (string, error)

	// Status reports whether the local list still has changes the server
	// has not acknowledged. Nothing is sent and no shadow is written.
	Status(ctx context.Context) (SyncStatus, error)
}

// SyncStatus describes the local side of the exchange.
type SyncStatus struct {
	// Initialized is false until the first fetch of the server's list.
	Initialized bool
	// Unsynced is true when local edits differ from the shadow, or when
	// envelopes wait for acknowledgement.
	Unsynced bool
	// Pending is the number of envelopes waiting for acknowledgement.
	Pending int
	// ServerVersion and ClientVersion are the shadow's version pair, counted
	// from the client's side.
	ServerVersion int64
	ClientVersion int64
}

// ClientSyncJob defines the contract for a background worker that
// periodically calls Sync.
type ClientSyncJob interface {
	// Start launches the background sync goroutine. It syncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
