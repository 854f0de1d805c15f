// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoNodeInContext means a sync route was reached without the auth
	// middleware in front of it.
	ErrNoNodeInContext = errors.New("no node id in request context")

	// ErrUnsupportedContentType is returned for a sync body that is neither
	// a JSON envelope list nor a JSON Patch document.
	ErrUnsupportedContentType = errors.New("unsupported content type")

	// ErrMalformedBody is returned when the request body cannot be decoded.
	ErrMalformedBody = errors.New("malformed request body")

	// ErrInvalidBodyHash is returned when the HashSHA256 header does not
	// match the request body.
	ErrInvalidBodyHash = errors.New("integrity check failed")
)
