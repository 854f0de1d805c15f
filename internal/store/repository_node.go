package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-diffsync/internal/logger"
	"github.com/MKhiriev/go-diffsync/models"
)

type nodeRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewNodeRepository constructs a PostgreSQL-backed [NodeRepository].
func NewNodeRepository(db *DB, logger *logger.Logger) NodeRepository {
	logger.Debug().Msg("creating node repository")
	return &nodeRepository{db: db, logger: logger}
}

// CreateNode stores a node and returns it with RegisteredAt filled in.
// A duplicate id yields [ErrNodeAlreadyExists].
func (r *nodeRepository) CreateNode(ctx context.Context, node models.Node) (models.Node, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertNodeQuery(node)
	if err != nil {
		log.Err(err).Str("func", "*nodeRepository.CreateNode").Msg("error building query")
		return models.Node{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&node.RegisteredAt)
	})
	if err != nil {
		log.Err(err).Str("func", "*nodeRepository.CreateNode").Str("node_id", node.NodeID).Msg("error inserting node")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Node{}, ErrNodeAlreadyExists
		default:
			return models.Node{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return node, nil
}

func (r *nodeRepository) FindNode(ctx context.Context, nodeID string) (models.Node, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNodeQuery(nodeID)
	if err != nil {
		log.Err(err).Str("func", "*nodeRepository.FindNode").Msg("error building query")
		return models.Node{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var node models.Node
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&node.NodeID, &node.RegisteredAt)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Node{}, ErrNodeNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*nodeRepository.FindNode").Str("node_id", nodeID).Msg("error selecting node")
		return models.Node{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return node, nil
}
