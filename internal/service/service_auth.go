package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-diffsync/internal/config"
	"github.com/MKhiriev/go-diffsync/internal/logger"
	"github.com/MKhiriev/go-diffsync/internal/store"
	"github.com/MKhiriev/go-diffsync/internal/utils"
	"github.com/MKhiriev/go-diffsync/models"
)

// idGenerator produces node identifiers.
type idGenerator interface {
	Generate() string
}

// authService registers nodes and manages their JWTs.
type authService struct {
	nodeRepository store.NodeRepository
	ids            idGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string
	// tokenIssuer is the "iss" claim of every issued JWT. Tokens with another
	// issuer are rejected.
	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService storing nodes in nodeRepository
// and signing tokens with the parameters of cfg.
//
// The returned service is safe for concurrent use.
func NewAuthService(nodeRepository store.NodeRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		nodeRepository: nodeRepository,
		ids:            utils.NewUUIDGenerator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterNode creates a node under a new UUIDv7 and issues its token.
//
// Returns:
//   - ErrNodeRegistrationFailed (wrapped) if the repository call fails.
//   - ErrTokenCreationFailed (wrapped) if signing fails.
func (a *authService) RegisterNode(ctx context.Context) (models.Node, models.Token, error) {
	log := logger.FromContext(ctx)

	node, err := a.nodeRepository.CreateNode(ctx, models.Node{NodeID: a.ids.Generate()})
	if err != nil {
		log.Err(err).Msg("node creation ended with error")
		return models.Node{}, models.Token{}, fmt.Errorf("%w: %w", ErrNodeRegistrationFailed, err)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, node.NodeID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("node_id", node.NodeID).Msg("token creation failed")
		return models.Node{}, models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Info().Str("node_id", node.NodeID).Msg("node registered")

	return node, token, nil
}

// ParseToken validates and parses a raw JWT string. Any validation failure
// (expired, wrong issuer, malformed) is reported as ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("rejected token")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
