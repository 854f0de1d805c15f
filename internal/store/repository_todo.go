package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-diffsync/internal/logger"
	"github.com/MKhiriev/go-diffsync/models"
)

// todoRepository is the PostgreSQL-backed implementation of [TodoRepository].
type todoRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewTodoRepository constructs a [TodoRepository] on top of db.
func NewTodoRepository(db *DB, logger *logger.Logger) TodoRepository {
	logger.Debug().Msg("creating todo repository")
	return &todoRepository{db: db, logger: logger}
}

func (r *todoRepository) FindAll(ctx context.Context) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTodosQuery()
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.FindAll").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var todos []models.Todo
	err = r.db.withRetry(ctx, func() error {
		todos, err = queryTodos(ctx, r.db, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.FindAll").Msg("error selecting todos")
		return nil, err
	}

	return todos, nil
}

func (r *todoRepository) FindOne(ctx context.Context, id int64) (models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTodoQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.FindOne").Msg("error building query")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var todo models.Todo
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&todo.ID, &todo.Description, &todo.Complete)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Todo{}, ErrTodoNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.FindOne").Int64("id", id).Msg("error selecting todo")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return todo, nil
}

func (r *todoRepository) Save(ctx context.Context, todo models.Todo) (models.Todo, error) {
	log := logger.FromContext(ctx)

	err := r.db.withRetry(ctx, func() error {
		saved, err := saveTodo(ctx, r.db, todo)
		if err == nil {
			todo = saved
		}
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.Save").Int64("id", todo.ID).Msg("error saving todo")
		return models.Todo{}, err
	}

	return todo, nil
}

func (r *todoRepository) SaveAndDelete(ctx context.Context, save, remove []models.Todo) error {
	log := logger.FromContext(ctx)

	err := r.db.withRetry(ctx, func() error {
		return r.db.inTx(ctx, func(tx *sql.Tx) error {
			if len(remove) > 0 {
				ids := make([]int64, 0, len(remove))
				for _, todo := range remove {
					ids = append(ids, todo.ID)
				}

				query, args, err := buildDeleteTodosQuery(ids)
				if err != nil {
					return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
				}
				if _, err = tx.ExecContext(ctx, query, args...); err != nil {
					return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
				}
			}

			for _, todo := range save {
				if _, err := saveTodo(ctx, tx, todo); err != nil {
					return err
				}
			}

			return nil
		})
	})
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.SaveAndDelete").
			Int("save", len(save)).
			Int("delete", len(remove)).
			Msg("error persisting todos")
		return err
	}

	return nil
}

type execQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// saveTodo inserts a todo without an id and updates one that has it. An
// update that matches no row inserts the todo anew.
func saveTodo(ctx context.Context, db execQuerier, todo models.Todo) (models.Todo, error) {
	if todo.ID != 0 {
		query, args, err := buildUpdateTodoQuery(todo)
		if err != nil {
			return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		res, err := db.ExecContext(ctx, query, args...)
		if err != nil {
			return models.Todo{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if n, err := res.RowsAffected(); err == nil && n > 0 {
			return todo, nil
		}
	}

	query, args, err := buildInsertTodoQuery(todo)
	if err != nil {
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if err = db.QueryRowContext(ctx, query, args...).Scan(&todo.ID); err != nil {
		return models.Todo{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return todo, nil
}

func queryTodos(ctx context.Context, db execQuerier, query string, args ...any) ([]models.Todo, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	todos := make([]models.Todo, 0)
	for rows.Next() {
		var todo models.Todo
		if err = rows.Scan(&todo.ID, &todo.Description, &todo.Complete); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		todos = append(todos, todo)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return todos, nil
}
