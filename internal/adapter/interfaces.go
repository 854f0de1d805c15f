// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to a go-diffsync server.
//
// [ServerAdapter] decouples the client services from the protocol. The
// package ships an HTTP implementation ([NewHTTPServerAdapter]) built on
// resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] without looking at the
// transport (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-diffsync/internal/diffsync"
	"github.com/MKhiriev/go-diffsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to the synchronization server on behalf of one node.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every authenticated
	// request.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// RegisterNode asks the server for a new node identity. On success the
	// issued token is stored via SetToken and returned with the node id.
	RegisterNode(ctx context.Context) (models.Credentials, error)

	// Sync sends the unacknowledged envelopes for resource, oldest first,
	// and returns the server's diff envelope. Versions are sent and
	// returned as seen by the server.
	// Fetch reads the whole collection of resource into out and makes the
	// server reset its shadow of it for this node.
	Fetch(ctx context.Context, resource string, out any) error
	Sync(ctx context.Context, resource string, envelopes []diffsync.VersionedPatch) (diffsync.VersionedPatch, error)

	// GetServerVersion returns the version string reported by the server.
	GetServerVersion(ctx context.Context) (string, error)
}
