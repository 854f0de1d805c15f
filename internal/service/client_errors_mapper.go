// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-diffsync/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The original error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrMissingToken):
		return fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)

	case errors.Is(err, adapter.ErrConflict):
		return fmt.Errorf("%w: %w", ErrPatchConflict, err)

	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrUnknownResource, err)

	case errors.Is(err, adapter.ErrBadGateway), errors.Is(err, adapter.ErrInternalServerError):
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)

	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrForbidden),
		errors.Is(err, adapter.ErrInvalidResponseHash):
		return fmt.Errorf("%w: %w", ErrSyncWithServer, err)
	}

	return err
}
