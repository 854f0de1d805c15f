package store

import (
	"context"

	"github.com/MKhiriev/go-diffsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator decides whether a database error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// TodoRepository is the server-side store of todos. Ids are assigned by the
// database; a todo saved with ID 0 is inserted.
type TodoRepository interface {
	// FindAll returns every todo ordered by id.
	FindAll(ctx context.Context) ([]models.Todo, error)
	// FindOne returns the todo with the given id or [ErrTodoNotFound].
	FindOne(ctx context.Context, id int64) (models.Todo, error)
	// Save inserts or updates a single todo and returns it with its id set.
	Save(ctx context.Context, todo models.Todo) (models.Todo, error)
	// SaveAndDelete stores save and removes remove in one transaction.
	SaveAndDelete(ctx context.Context, save, remove []models.Todo) error
}

// NodeRepository keeps the registered synchronization nodes.
type NodeRepository interface {
	CreateNode(ctx context.Context, node models.Node) (models.Node, error)
	FindNode(ctx context.Context, nodeID string) (models.Node, error)
}
