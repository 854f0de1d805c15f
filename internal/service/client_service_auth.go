package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-diffsync/internal/adapter"
	"github.com/MKhiriev/go-diffsync/internal/logger"
	"github.com/MKhiriev/go-diffsync/internal/store"
	"github.com/MKhiriev/go-diffsync/models"
)

type clientAuthService struct {
	credentials store.LocalCredentialsRepository
	adapter     adapter.ServerAdapter
	logger      *logger.Logger
}

// NewClientAuthService returns the [ClientAuthService] of the client.
//
// Parameters:
//   - credentials: local storage for the node id and token.
//   - serverAdapter: transport used to register the node; it also receives
//     the token for every later request.
//   - logger: structured logger for registration events.
func NewClientAuthService(credentials store.LocalCredentialsRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{credentials: credentials, adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) EnsureRegistered(ctx context.Context) (models.Credentials, error) {
	credentials, err := a.credentials.Get(ctx)
	switch {
	case err == nil:
		a.adapter.SetToken(credentials.Token)
		return credentials, nil
	case errors.Is(err, store.ErrCredentialsNotFound):
		return a.Register(ctx)
	default:
		return models.Credentials{}, fmt.Errorf("read credentials: %w", err)
	}
}

func (a *clientAuthService) Register(ctx context.Context) (models.Credentials, error) {
	credentials, err := a.adapter.RegisterNode(ctx)
	if err != nil {
		return models.Credentials{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	if err = a.credentials.Save(ctx, credentials); err != nil {
		return models.Credentials{}, fmt.Errorf("save credentials: %w", err)
	}
	a.adapter.SetToken(credentials.Token)

	a.logger.Info().Str("node_id", credentials.NodeID).Msg("client node registered")

	return credentials, nil
}
