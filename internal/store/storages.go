package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-diffsync/internal/config"
	"github.com/MKhiriev/go-diffsync/internal/diffsync"
	"github.com/MKhiriev/go-diffsync/internal/logger"
)

// Storages groups the server-side repositories.
type Storages struct {
	TodoRepository TodoRepository
	NodeRepository NodeRepository
	ShadowStore    diffsync.ShadowStore

	dbs []*DB
}

// NewStorages connects to PostgreSQL, runs the migrations and builds the
// shadow store selected by cfg.Shadows.Backend.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}
	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	s := &Storages{
		TodoRepository: NewTodoRepository(db, log),
		NodeRepository: NewNodeRepository(db, log),
		dbs:            []*DB{db},
	}

	if s.ShadowStore, err = s.newShadowStore(ctx, db, cfg.Shadows, log); err != nil {
		return nil, errors.Join(err, s.Close())
	}

	return s, nil
}

func (s *Storages) newShadowStore(ctx context.Context, db *DB, cfg config.Shadows, log *logger.Logger) (diffsync.ShadowStore, error) {
	log.Info().Str("backend", cfg.Backend).Msg("creating shadow store")

	switch cfg.Backend {
	case config.ShadowBackendMemory, "":
		return NewMemoryShadowStore(), nil
	case config.ShadowBackendPostgres:
		if cfg.DSN == "" {
			return NewSQLShadowStore(db), nil
		}

		shadowDB, err := NewConnectPostgres(ctx, config.DB{DSN: cfg.DSN}, log)
		if err != nil {
			return nil, fmt.Errorf("shadow store connection error: %w", err)
		}
		return s.migrated(shadowDB)
	case config.ShadowBackendSQLite:
		shadowDB, err := NewConnectSQLite(ctx, cfg.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("shadow store connection error: %w", err)
		}
		return s.migrated(shadowDB)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownShadowBackend, cfg.Backend)
}

func (s *Storages) migrated(db *DB) (diffsync.ShadowStore, error) {
	s.dbs = append(s.dbs, db)
	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("shadow store migration failed: %w", err)
	}

	return NewSQLShadowStore(db), nil
}

// Close closes every database connection opened by [NewStorages].
func (s *Storages) Close() error {
	var errs []error
	for _, db := range s.dbs {
		errs = append(errs, db.Close())
	}

	return errors.Join(errs...)
}
