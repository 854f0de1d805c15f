package diffsync

import (
	"context"

	"github.com/MKhiriev/go-diffsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/shadow_store_mock.go -package=mock

// ShadowStore persists shadows by key. Writes are last-write-wins.
type ShadowStore interface {
	// GetShadow returns the shadow stored under key. The boolean is false
	// when nothing has been stored yet.
	GetShadow(ctx context.Context, key string) (models.StoredShadow, bool, error)
	// PutShadow stores shadow under key, replacing any previous value.
	PutShadow(ctx context.Context, key string, shadow models.StoredShadow) error
}
