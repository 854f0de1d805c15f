package models

import "time"

// Node is a registered synchronization peer. Every node keeps its own set of
// shadows on the server.
type Node struct {
	// NodeID is the identifier carried in the token subject.
	NodeID string `json:"node_id"`

	// RegisteredAt is set by the server on registration.
	RegisteredAt *time.Time `json:"registered_at,omitempty"`
}

// Credentials is what a client keeps after registering with a server.
type Credentials struct {
	NodeID string `json:"node_id"`
	Token  string `json:"-"`
}
