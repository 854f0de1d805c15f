// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/MKhiriev/go-diffsync/internal/diffsync"
	"github.com/MKhiriev/go-diffsync/internal/logger"
	"github.com/MKhiriev/go-diffsync/internal/patch"
)

// resourceSync applies patches to one resource and persists the outcome
// through its callback.
type resourceSync[T any] struct {
	name        string
	entity      string
	callback    PersistenceCallback[T]
	equivalency Equivalency
}

// fetch returns the whole collection and makes it the node's shadow, so
// that the node and the server continue from the same state at 0/0.
func (r *resourceSync[T]) fetch(ctx context.Context, shadows diffsync.ShadowStore) (any, error) {
	s := diffsync.New[[]T](shadows, diffsync.WithEntityName(r.entity))

	items, err := r.callback.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", r.name, err)
	}

	if err = s.Reset(ctx, items); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *resourceSync[T]) syncList(ctx context.Context, shadows diffsync.ShadowStore, patches []diffsync.Patch) (diffsync.VersionedPatch, error) {
	log := logger.FromContext(ctx)
	s := diffsync.New[[]T](shadows, diffsync.WithEntityName(r.entity), diffsync.WithEmptyPatchVersioning())

	if err := requireShadow(ctx, s, patches); err != nil {
		return diffsync.VersionedPatch{}, err
	}

	original, err := r.callback.FindAll(ctx)
	if err != nil {
		return diffsync.VersionedPatch{}, fmt.Errorf("find %s: %w", r.name, err)
	}

	patched, err := s.Apply(ctx, original, patches...)
	if err != nil {
		return diffsync.VersionedPatch{}, patchError(err)
	}

	toSave, toDelete := r.changes(original, patched)
	if len(toSave) > 0 || len(toDelete) > 0 {
		log.Debug().
			Str("resource", r.name).
			Str("shadow", s.Key()).
			Int("save", len(toSave)).
			Int("delete", len(toDelete)).
			Msg("persisting changes")

		if err = r.callback.PersistChanges(ctx, toSave, toDelete); err != nil {
			return diffsync.VersionedPatch{}, fmt.Errorf("persist %s: %w", r.name, err)
		}
	}

	// ids assigned by the store reach the node with the next diff
	persisted, err := r.callback.FindAll(ctx)
	if err != nil {
		return diffsync.VersionedPatch{}, fmt.Errorf("find %s: %w", r.name, err)
	}

	return s.Diff(ctx, persisted)
}

func (r *resourceSync[T]) syncOne(ctx context.Context, shadows diffsync.ShadowStore, id string, patches []diffsync.Patch) (diffsync.VersionedPatch, error) {
	s := diffsync.New[T](shadows, diffsync.WithEntityName(r.entity+"/"+id), diffsync.WithEmptyPatchVersioning())

	if err := requireShadow(ctx, s, patches); err != nil {
		return diffsync.VersionedPatch{}, err
	}

	original, err := r.callback.FindOne(ctx, id)
	if err != nil {
		return diffsync.VersionedPatch{}, fmt.Errorf("find %s %s: %w", r.name, id, err)
	}

	patched, err := s.Apply(ctx, original, patches...)
	if err != nil {
		return diffsync.VersionedPatch{}, patchError(err)
	}

	if !reflect.DeepEqual(original, patched) {
		if err = r.callback.PersistChange(ctx, patched); err != nil {
			return diffsync.VersionedPatch{}, fmt.Errorf("persist %s %s: %w", r.name, id, err)
		}
	}

	persisted, err := r.callback.FindOne(ctx, id)
	if err != nil {
		return diffsync.VersionedPatch{}, fmt.Errorf("find %s %s: %w", r.name, id, err)
	}

	return s.Diff(ctx, persisted)
}

// requireShadow fails with [ErrShadowMissing] when a patch carries versions
// other than 0/0 but nothing is stored for the node. The node then has to
// fetch the resource again.
func requireShadow(ctx context.Context, s interface {
	Initialized(ctx context.Context) (bool, error)
}, patches []diffsync.Patch) error {
	for _, p := range patches {
		vp, ok := p.(diffsync.VersionedPatch)
		if !ok || (vp.ServerVersion == 0 && vp.ClientVersion == 0) {
			continue
		}

		initialized, err := s.Initialized(ctx)
		if err != nil {
			return err
		}
		if !initialized {
			return fmt.Errorf("%w: envelope %d/%d", ErrShadowMissing, vp.ServerVersion, vp.ClientVersion)
		}
		return nil
	}

	return nil
}

// changes returns the patched items that match no original item and the
// original items that have no equivalent left in patched.
func (r *resourceSync[T]) changes(original, patched []T) (toSave, toDelete []T) {
	for _, item := range patched {
		if !containsFunc(original, item, func(a, b T) bool { return reflect.DeepEqual(a, b) }) {
			toSave = append(toSave, item)
		}
	}

	for _, candidate := range original {
		if !containsFunc(patched, candidate, func(a, b T) bool { return r.equivalency.IsEquivalent(a, b) }) {
			toDelete = append(toDelete, candidate)
		}
	}

	return toSave, toDelete
}

func containsFunc[T any](items []T, v T, eq func(a, b T) bool) bool {
	for _, item := range items {
		if eq(item, v) {
			return true
		}
	}
	return false
}

// patchError marks failures of the patch itself as [ErrPatchConflict].
// Shadow store failures pass through unchanged.
func patchError(err error) error {
	if errors.Is(err, diffsync.ErrShadowStore) || errors.Is(err, diffsync.ErrCorruptShadow) {
		return err
	}

	var opErr *patch.OperationError
	if errors.As(err, &opErr) ||
		errors.Is(err, patch.ErrTestFailed) ||
		errors.Is(err, patch.ErrNotNullable) ||
		errors.Is(err, patch.ErrUnresolvablePath) ||
		errors.Is(err, patch.ErrTypeMismatch) {
		return fmt.Errorf("%w: %w", ErrPatchConflict, err)
	}

	return err
}
