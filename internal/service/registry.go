package service

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-diffsync/internal/diffsync"
)

// resourceSyncer is a registered resource with its entity type erased.
type resourceSyncer interface {
	fetch(ctx context.Context, shadows diffsync.ShadowStore) (any, error)
	syncList(ctx context.Context, shadows diffsync.ShadowStore, patches []diffsync.Patch) (diffsync.VersionedPatch, error)
	syncOne(ctx context.Context, shadows diffsync.ShadowStore, id string, patches []diffsync.Patch) (diffsync.VersionedPatch, error)
}

// Registry maps resource names to their persistence callbacks.
type Registry struct {
	mu        sync.RWMutex
	resources map[string]resourceSyncer
}

// NewRegistry returns an empty Registry. Resources are added with
// [Register] before the registry is handed to [NewSyncService]; lookups are
// safe for concurrent use.
func NewRegistry() *Registry {
	return &Registry{resources: make(map[string]resourceSyncer)}
}

// Register adds callback under the lowercased plural of its entity type name
// (Todo becomes "todos") and returns that name. Entities are matched with
// equivalency, [IDEquivalency] when nil.
func Register[T any](r *Registry, callback PersistenceCallback[T], equivalency Equivalency) (string, error) {
	if equivalency == nil {
		equivalency = IDEquivalency{}
	}

	entity := callback.EntityType().Name()
	name := ResourceName(callback.EntityType())

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.resources[name]; ok {
		return "", fmt.Errorf("%w: %s", ErrResourceRegistered, name)
	}

	r.resources[name] = &resourceSync[T]{
		name:        name,
		entity:      entity,
		callback:    callback,
		equivalency: equivalency,
	}

	return name, nil
}

func (r *Registry) find(name string) (resourceSyncer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rs, ok := r.resources[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownResource, name)
	}

	return rs, nil
}

// Names returns the registered resource names in order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.resources))
	for name := range r.resources {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// ResourceName derives the resource name of an entity type.
func ResourceName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice {
		t = t.Elem()
	}

	name := strings.ToLower(t.Name())
	switch {
	case name == "":
		return ""
	case strings.HasSuffix(name, "y") && !strings.ContainsAny(name[max(len(name)-2, 0):len(name)-1], "aeiou"):
		return name[:len(name)-1] + "ies"
	case strings.HasSuffix(name, "s"), strings.HasSuffix(name, "x"),
		strings.HasSuffix(name, "ch"), strings.HasSuffix(name, "sh"):
		return name + "es"
	}

	return name + "s"
}
