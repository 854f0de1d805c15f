package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-diffsync/internal/diffsync"
	"github.com/MKhiriev/go-diffsync/internal/logger"
	"github.com/MKhiriev/go-diffsync/migrations"
	"github.com/MKhiriev/go-diffsync/models"
)

// sqlShadowStore keeps shadows in the "shadows" table of either PostgreSQL
// or SQLite.
type sqlShadowStore struct {
	db          *DB
	placeholder sq.PlaceholderFormat
}

// NewSQLShadowStore returns a [diffsync.ShadowStore] on top of db. The
// placeholder style follows the connection's dialect.
func NewSQLShadowStore(db *DB) diffsync.ShadowStore {
	var ph sq.PlaceholderFormat = sq.Question
	if db.dialect == migrations.DialectPostgres {
		ph = sq.Dollar
	}

	return &sqlShadowStore{db: db, placeholder: ph}
}

func (s *sqlShadowStore) GetShadow(ctx context.Context, key string) (models.StoredShadow, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectShadowQuery(s.placeholder, key)
	if err != nil {
		log.Err(err).Str("func", "*sqlShadowStore.GetShadow").Msg("error building query")
		return models.StoredShadow{}, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		shadow   models.StoredShadow
		resource []byte
	)
	err = s.db.withRetry(ctx, func() error {
		return s.db.QueryRowContext(ctx, query, args...).Scan(&resource, &shadow.ServerVersion, &shadow.ClientVersion)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredShadow{}, false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*sqlShadowStore.GetShadow").Str("key", key).Msg("error selecting shadow")
		return models.StoredShadow{}, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	shadow.Resource = resource

	return shadow, true, nil
}

func (s *sqlShadowStore) PutShadow(ctx context.Context, key string, shadow models.StoredShadow) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertShadowQuery(s.placeholder, key, shadow)
	if err != nil {
		log.Err(err).Str("func", "*sqlShadowStore.PutShadow").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = s.db.withRetry(ctx, func() error {
		_, err := s.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*sqlShadowStore.PutShadow").Str("key", key).Msg("error storing shadow")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
