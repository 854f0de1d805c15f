package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-diffsync/internal/logger"
	"github.com/MKhiriev/go-diffsync/models"
)

type localCredentialsRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewLocalCredentialsRepository constructs a SQLite-backed
// [LocalCredentialsRepository].
func NewLocalCredentialsRepository(db *DB, logger *logger.Logger) LocalCredentialsRepository {
	return &localCredentialsRepository{db: db, logger: logger}
}

func (l *localCredentialsRepository) Save(ctx context.Context, credentials models.Credentials) error {
	if _, err := l.db.ExecContext(ctx, upsertCredentials, credentials.NodeID, credentials.Token); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localCredentialsRepository.Save").Msg("error saving credentials")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (l *localCredentialsRepository) Get(ctx context.Context) (models.Credentials, error) {
	var credentials models.Credentials

	err := l.db.QueryRowContext(ctx, selectCredentials).Scan(&credentials.NodeID, &credentials.Token)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Credentials{}, ErrCredentialsNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localCredentialsRepository.Get").Msg("error reading credentials")
		return models.Credentials{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return credentials, nil
}
