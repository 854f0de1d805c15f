package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-diffsync/internal/diffsync"
	"github.com/MKhiriev/go-diffsync/internal/logger"
	"github.com/MKhiriev/go-diffsync/internal/patch"
)

type localPendingRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewLocalPendingRepository constructs a SQLite-backed [LocalPendingRepository].
// Patches are stored in their JSON wire form.
func NewLocalPendingRepository(db *DB, logger *logger.Logger) LocalPendingRepository {
	return &localPendingRepository{db: db, logger: logger}
}

func (l *localPendingRepository) Append(ctx context.Context, resource string, envelope diffsync.VersionedPatch) error {
	ops, err := json.Marshal(envelope.Patch)
	if err != nil {
		return fmt.Errorf("encode pending patch: %w", err)
	}

	err = l.db.withRetry(ctx, func() error {
		_, err := l.db.ExecContext(ctx, upsertPendingPatch, resource, envelope.ServerVersion, envelope.ClientVersion, string(ops))
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*localPendingRepository.Append").
			Str("resource", resource).
			Int64("server_version", envelope.ServerVersion).
			Msg("error saving pending patch")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (l *localPendingRepository) List(ctx context.Context, resource string) ([]diffsync.VersionedPatch, error) {
	log := logger.FromContext(ctx)

	rows, err := l.db.QueryContext(ctx, selectPendingPatches, resource)
	if err != nil {
		log.Err(err).Str("func", "*localPendingRepository.List").Msg("error selecting pending patches")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	envelopes := make([]diffsync.VersionedPatch, 0)
	for rows.Next() {
		var (
			envelope diffsync.VersionedPatch
			raw      string
		)
		if err = rows.Scan(&envelope.ServerVersion, &envelope.ClientVersion, &raw); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		var ops patch.Patch
		if err = json.Unmarshal([]byte(raw), &ops); err != nil {
			log.Err(err).Str("func", "*localPendingRepository.List").
				Int64("server_version", envelope.ServerVersion).
				Msg("error decoding pending patch")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		envelope.Patch = ops

		envelopes = append(envelopes, envelope)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return envelopes, nil
}

func (l *localPendingRepository) Acknowledge(ctx context.Context, resource string, upTo int64) error {
	if _, err := l.db.ExecContext(ctx, deletePendingPatchesBelow, resource, upTo); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localPendingRepository.Acknowledge").Msg("error deleting pending patches")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (l *localPendingRepository) Clear(ctx context.Context, resource string) error {
	if _, err := l.db.ExecContext(ctx, deletePendingPatches, resource); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localPendingRepository.Clear").Msg("error deleting pending patches")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
