package diffsync

import (
	"context"
	"fmt"
	"reflect"

	"github.com/MKhiriev/go-diffsync/internal/diff"
	"github.com/MKhiriev/go-diffsync/internal/logger"
	"github.com/MKhiriev/go-diffsync/internal/patch"
)

const (
	keyPrefix    = "shadow/"
	listSuffix   = "List"
	backupSuffix = "_backup"
)

// Sync runs Differential Synchronization for resources of type T, either a
// single entity or a slice of entities.
type Sync[T any] struct {
	store             ShadowStore
	key               string
	versionEmptyPatch bool
}

// New returns a Sync keeping its shadows in store.
func New[T any](store ShadowStore, opts ...Option) *Sync[T] {
	o := options{entityName: entityName(reflect.TypeFor[T]())}
	for _, opt := range opts {
		opt(&o)
	}

	key := keyPrefix + o.entityName
	if reflect.TypeFor[T]().Kind() == reflect.Slice {
		key += listSuffix
	}

	return &Sync[T]{
		store:             store,
		key:               key,
		versionEmptyPatch: o.versionEmptyPatch,
	}
}

func entityName(t reflect.Type) string {
	for t.Kind() == reflect.Slice || t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// Key returns the store key of the shadow. The backup shadow lives under
// Key with a "_backup" suffix.
func (s *Sync[T]) Key() string {
	return s.key
}

// Apply applies patches in order to the shadow and to a copy of target and
// returns the patched copy. Target itself is never modified.
//
// Versioned patches already applied are skipped. A versioned patch computed
// against an older ServerVersion than the shadow's means the diff sent last
// never arrived, and the backup shadow becomes the current one before the
// patch is checked.
//
// On error the value passed in for the failing patch is returned, and no
// shadow is written for that patch.
func (s *Sync[T]) Apply(ctx context.Context, target T, patches ...Patch) (T, error) {
	result := target
	for _, p := range patches {
		next, err := s.apply(ctx, result, p)
		if err != nil {
			return result, err
		}
		result = next
	}

	return result, nil
}

func (s *Sync[T]) apply(ctx context.Context, target T, p Patch) (T, error) {
	log := logger.FromContext(ctx)
	ops, versioned, isVersioned := unwrap(p)

	if ops.Size() == 0 && !(isVersioned && s.versionEmptyPatch) {
		return target, nil
	}

	shadow, err := s.load(ctx, s.key, target)
	if err != nil {
		return target, err
	}

	if isVersioned && versioned.ServerVersion < shadow.ServerVersion {
		log.Debug().
			Str("key", s.key).
			Int64("patch_server_version", versioned.ServerVersion).
			Int64("shadow_server_version", shadow.ServerVersion).
			Msg("restoring backup shadow")

		if shadow, err = s.load(ctx, s.key+backupSuffix, target); err != nil {
			return target, err
		}
		if err = s.put(ctx, s.key, shadow); err != nil {
			return target, err
		}
	}

	if isVersioned && (versioned.ServerVersion != shadow.ServerVersion || versioned.ClientVersion != shadow.ClientVersion) {
		log.Debug().
			Str("key", s.key).
			Int64("patch_server_version", versioned.ServerVersion).
			Int64("patch_client_version", versioned.ClientVersion).
			Int64("shadow_server_version", shadow.ServerVersion).
			Int64("shadow_client_version", shadow.ClientVersion).
			Msg("skipping already applied patch")
		return target, nil
	}

	resource, err := patch.ApplyTo(ops, shadow.Resource)
	if err != nil {
		return target, err
	}

	result, err := patch.ApplyTo(ops, target)
	if err != nil {
		return target, err
	}

	next := Shadow[T]{
		Resource:      resource,
		ServerVersion: shadow.ServerVersion,
		ClientVersion: shadow.ClientVersion + 1,
	}
	if err = s.put(ctx, s.key, next); err != nil {
		return target, err
	}
	if err = s.put(ctx, s.key+backupSuffix, next); err != nil {
		return target, err
	}

	return result, nil
}

func unwrap(p Patch) (patch.Patch, VersionedPatch, bool) {
	switch v := p.(type) {
	case nil:
		return nil, VersionedPatch{}, false
	case VersionedPatch:
		return v.Patch, v, true
	case *VersionedPatch:
		if v == nil {
			return nil, VersionedPatch{}, false
		}
		return v.Patch, *v, true
	}
	return p.Operations(), VersionedPatch{}, false
}

// Diff compares the shadow with target and returns the difference stamped
// with the shadow's version pair. The shadow then takes the new state and
// its ServerVersion is incremented, even for an empty difference. The backup
// shadow is not touched.
func (s *Sync[T]) Diff(ctx context.Context, target T) (VersionedPatch, error) {
	shadow, err := s.load(ctx, s.key, target)
	if err != nil {
		return VersionedPatch{}, err
	}

	ops, err := diff.Diff(shadow.Resource, target)
	if err != nil {
		return VersionedPatch{}, fmt.Errorf("diff against shadow %q: %w", s.key, err)
	}

	patched, err := patch.ApplyTo(ops, shadow.Resource)
	if err != nil {
		return VersionedPatch{}, fmt.Errorf("advance shadow %q: %w", s.key, err)
	}

	next := Shadow[T]{
		Resource:      patched,
		ServerVersion: shadow.ServerVersion + 1,
		ClientVersion: shadow.ClientVersion,
	}
	if err = s.put(ctx, s.key, next); err != nil {
		return VersionedPatch{}, err
	}

	return VersionedPatch{
		Patch:         ops,
		ServerVersion: shadow.ServerVersion,
		ClientVersion: shadow.ClientVersion,
	}, nil
}

// Changed reports whether target differs from the shadow. Nothing is stored.
func (s *Sync[T]) Changed(ctx context.Context, target T) (bool, error) {
	shadow, err := s.load(ctx, s.key, target)
	if err != nil {
		return false, err
	}

	ops, err := diff.Diff(shadow.Resource, target)
	if err != nil {
		return false, fmt.Errorf("diff against shadow %q: %w", s.key, err)
	}

	return ops.Size() > 0, nil
}

// Shadow returns the current shadow, creating it from target when nothing
// has been stored yet.
func (s *Sync[T]) Shadow(ctx context.Context, target T) (Shadow[T], error) {
	return s.load(ctx, s.key, target)
}

// Initialized reports whether a shadow has been stored for this key.
func (s *Sync[T]) Initialized(ctx context.Context) (bool, error) {
	_, ok, err := s.store.GetShadow(ctx, s.key)
	if err != nil {
		return false, fmt.Errorf("%w: get %q: %w", ErrShadowStore, s.key, err)
	}

	return ok, nil
}

// Reset makes resource the shadow and the backup shadow at version 0/0.
// Both nodes reset to the same state before they start exchanging diffs.
func (s *Sync[T]) Reset(ctx context.Context, resource T) error {
	resource, err := patch.Clone(resource)
	if err != nil {
		return err
	}

	shadow := Shadow[T]{Resource: resource}
	if err = s.put(ctx, s.key, shadow); err != nil {
		return err
	}

	return s.put(ctx, s.key+backupSuffix, shadow)
}

// load reads the shadow under key. An absent shadow starts as a copy of
// target at version 0/0 and is not stored until it changes.
func (s *Sync[T]) load(ctx context.Context, key string, target T) (Shadow[T], error) {
	stored, ok, err := s.store.GetShadow(ctx, key)
	if err != nil {
		return Shadow[T]{}, fmt.Errorf("%w: get %q: %w", ErrShadowStore, key, err)
	}

	if !ok {
		resource, err := patch.Clone(target)
		if err != nil {
			return Shadow[T]{}, err
		}
		return Shadow[T]{Resource: resource}, nil
	}

	shadow, err := decodeShadow[T](stored)
	if err != nil {
		return Shadow[T]{}, fmt.Errorf("shadow %q: %w", key, err)
	}

	return shadow, nil
}

func (s *Sync[T]) put(ctx context.Context, key string, shadow Shadow[T]) error {
	stored, err := shadow.encode()
	if err != nil {
		return fmt.Errorf("shadow %q: %w", key, err)
	}

	if err = s.store.PutShadow(ctx, key, stored); err != nil {
		return fmt.Errorf("%w: put %q: %w", ErrShadowStore, key, err)
	}

	return nil
}
