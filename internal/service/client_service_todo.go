package service

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-diffsync/internal/store"
	"github.com/MKhiriev/go-diffsync/models"
)

type clientTodoService struct {
	todos store.LocalTodoRepository
	mu    *sync.Mutex
}

// NewClientTodoService returns a [ClientTodoService] over todos. mu is shared
// with the sync service.
func NewClientTodoService(todos store.LocalTodoRepository, mu *sync.Mutex) ClientTodoService {
	return &clientTodoService{todos: todos, mu: mu}
}

func (c *clientTodoService) List(ctx context.Context) ([]models.Todo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.todos.FindAll(ctx)
}

func (c *clientTodoService) Add(ctx context.Context, description string) ([]models.Todo, error) {
	description, err := validDescription(description)
	if err != nil {
		return nil, err
	}

	return c.update(ctx, func(todos []models.Todo) ([]models.Todo, error) {
		return append(todos, models.Todo{Description: description}), nil
	})
}

func (c *clientTodoService) Edit(ctx context.Context, index int, description string) ([]models.Todo, error) {
	description, err := validDescription(description)
	if err != nil {
		return nil, err
	}

	return c.update(ctx, func(todos []models.Todo) ([]models.Todo, error) {
		if err := checkIndex(todos, index); err != nil {
			return nil, err
		}
		todos[index].Description = description
		return todos, nil
	})
}

func (c *clientTodoService) Toggle(ctx context.Context, index int) ([]models.Todo, error) {
	return c.update(ctx, func(todos []models.Todo) ([]models.Todo, error) {
		if err := checkIndex(todos, index); err != nil {
			return nil, err
		}
		todos[index].Complete = !todos[index].Complete
		return todos, nil
	})
}

func (c *clientTodoService) Remove(ctx context.Context, index int) ([]models.Todo, error) {
	return c.update(ctx, func(todos []models.Todo) ([]models.Todo, error) {
		if err := checkIndex(todos, index); err != nil {
			return nil, err
		}
		return slices.Delete(todos, index, index+1), nil
	})
}

func (c *clientTodoService) RemoveCompleted(ctx context.Context) ([]models.Todo, error) {
	return c.update(ctx, func(todos []models.Todo) ([]models.Todo, error) {
		return slices.DeleteFunc(todos, func(t models.Todo) bool { return t.Complete }), nil
	})
}

func (c *clientTodoService) ToggleAll(ctx context.Context) ([]models.Todo, error) {
	return c.update(ctx, func(todos []models.Todo) ([]models.Todo, error) {
		complete := slices.ContainsFunc(todos, func(t models.Todo) bool { return !t.Complete })
		for i := range todos {
			todos[i].Complete = complete
		}
		return todos, nil
	})
}

func (c *clientTodoService) update(ctx context.Context, change func([]models.Todo) ([]models.Todo, error)) ([]models.Todo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	todos, err := c.todos.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if todos, err = change(todos); err != nil {
		return nil, err
	}

	if err = c.todos.ReplaceAll(ctx, todos); err != nil {
		return nil, err
	}

	return todos, nil
}

func validDescription(description string) (string, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return "", ErrEmptyDescription
	}
	return description, nil
}

func checkIndex(todos []models.Todo, index int) error {
	if index < 0 || index >= len(todos) {
		return ErrTodoIndexOutOfList
	}
	return nil
}
