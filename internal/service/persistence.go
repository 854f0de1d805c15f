package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/MKhiriev/go-diffsync/internal/store"
	"github.com/MKhiriev/go-diffsync/internal/validators"
	"github.com/MKhiriev/go-diffsync/models"
)

// PersistenceCallback connects a synchronized resource to its storage.
type PersistenceCallback[T any] interface {
	// FindAll returns the whole collection.
	FindAll(ctx context.Context) ([]T, error)
	// FindOne returns the entity with the given id or [ErrResourceNotFound].
	FindOne(ctx context.Context, id string) (T, error)
	// PersistChange stores a single entity.
	PersistChange(ctx context.Context, item T) error
	// PersistChanges stores toSave and removes toDelete.
	PersistChanges(ctx context.Context, toSave, toDelete []T) error
	// EntityType is the type of one entity; its name keys the shadows and
	// the resource.
	EntityType() reflect.Type
}

type todoCallback struct {
	repository store.TodoRepository
	validator  validators.Validator
}

// NewTodoCallback returns the [PersistenceCallback] of the todo list. Todos
// rejected by validator are not stored and fail with [ErrInvalidEntity].
func NewTodoCallback(repository store.TodoRepository, validator validators.Validator) PersistenceCallback[models.Todo] {
	return &todoCallback{repository: repository, validator: validator}
}

func (c *todoCallback) FindAll(ctx context.Context) ([]models.Todo, error) {
	return c.repository.FindAll(ctx)
}

func (c *todoCallback) FindOne(ctx context.Context, id string) (models.Todo, error) {
	todoID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return models.Todo{}, fmt.Errorf("%w: %q", ErrInvalidResourceID, id)
	}

	todo, err := c.repository.FindOne(ctx, todoID)
	if errors.Is(err, store.ErrTodoNotFound) {
		return models.Todo{}, fmt.Errorf("%w: todo %d", ErrResourceNotFound, todoID)
	}

	return todo, err
}

func (c *todoCallback) PersistChange(ctx context.Context, item models.Todo) error {
	if err := c.validate(ctx, item); err != nil {
		return err
	}

	_, err := c.repository.Save(ctx, item)
	return err
}

func (c *todoCallback) PersistChanges(ctx context.Context, toSave, toDelete []models.Todo) error {
	if err := c.validate(ctx, toSave); err != nil {
		return err
	}

	return c.repository.SaveAndDelete(ctx, toSave, toDelete)
}

func (c *todoCallback) validate(ctx context.Context, v any) error {
	if c.validator == nil {
		return nil
	}
	if err := c.validator.Validate(ctx, v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEntity, err)
	}
	return nil
}

func (c *todoCallback) EntityType() reflect.Type {
	return reflect.TypeFor[models.Todo]()
}
