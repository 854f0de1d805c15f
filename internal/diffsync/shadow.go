package diffsync

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-diffsync/models"
)

// Shadow is a node's copy of the remote side's state plus the version
// counters used for reconciliation.
type Shadow[T any] struct {
	Resource      T
	ServerVersion int64
	ClientVersion int64
}

func (s Shadow[T]) encode() (models.StoredShadow, error) {
	raw, err := json.Marshal(s.Resource)
	if err != nil {
		return models.StoredShadow{}, fmt.Errorf("%w: %w", ErrCorruptShadow, err)
	}

	return models.StoredShadow{
		Resource:      raw,
		ServerVersion: s.ServerVersion,
		ClientVersion: s.ClientVersion,
	}, nil
}

func decodeShadow[T any](stored models.StoredShadow) (Shadow[T], error) {
	var resource T
	if err := json.Unmarshal(stored.Resource, &resource); err != nil {
		return Shadow[T]{}, fmt.Errorf("%w: %w", ErrCorruptShadow, err)
	}

	return Shadow[T]{
		Resource:      resource,
		ServerVersion: stored.ServerVersion,
		ClientVersion: stored.ClientVersion,
	}, nil
}
