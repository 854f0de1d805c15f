package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-diffsync/internal/config"
	"github.com/MKhiriev/go-diffsync/internal/diffsync"
	"github.com/MKhiriev/go-diffsync/internal/logger"
)

// ClientStorages groups the client-side repositories. All of them live in
// one SQLite file.
type ClientStorages struct {
	TodoRepository        LocalTodoRepository
	CredentialsRepository LocalCredentialsRepository
	PendingRepository     LocalPendingRepository
	ShadowStore           diffsync.ShadowStore

	db *DB
}

// NewClientStorages opens the local SQLite database, runs the migrations and
// builds the repositories on top of it.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		TodoRepository:        NewLocalTodoRepository(db, logger),
		CredentialsRepository: NewLocalCredentialsRepository(db, logger),
		PendingRepository:     NewLocalPendingRepository(db, logger),
		ShadowStore:           NewSQLShadowStore(db),
		db:                    db,
	}, nil
}

// Close closes the local database.
func (c *ClientStorages) Close() error {
	return c.db.Close()
}
