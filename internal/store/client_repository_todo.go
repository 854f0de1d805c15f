package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-diffsync/internal/logger"
	"github.com/MKhiriev/go-diffsync/models"
)

type localTodoRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewLocalTodoRepository constructs a SQLite-backed [LocalTodoRepository].
func NewLocalTodoRepository(db *DB, logger *logger.Logger) LocalTodoRepository {
	return &localTodoRepository{db: db, logger: logger}
}

func (l *localTodoRepository) FindAll(ctx context.Context) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	todos, err := queryTodos(ctx, l.db, selectLocalTodos)
	if err != nil {
		log.Err(err).Str("func", "*localTodoRepository.FindAll").Msg("error selecting local todos")
		return nil, err
	}

	return todos, nil
}

func (l *localTodoRepository) ReplaceAll(ctx context.Context, todos []models.Todo) error {
	log := logger.FromContext(ctx)

	err := l.db.withRetry(ctx, func() error {
		return l.db.inTx(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, deleteLocalTodos); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
			}

			stmt, err := tx.PrepareContext(ctx, insertLocalTodo)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			defer stmt.Close()

			for i, todo := range todos {
				if _, err = stmt.ExecContext(ctx, i, todo.ID, todo.Description, todo.Complete); err != nil {
					return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
				}
			}

			return nil
		})
	})
	if err != nil {
		log.Err(err).Str("func", "*localTodoRepository.ReplaceAll").Int("count", len(todos)).Msg("error replacing local todos")
		return err
	}

	return nil
}
