package service

import (
	"reflect"
	"strings"
)

// Equivalency tells whether two entities are the same resource, possibly in
// different states.
type Equivalency interface {
	IsEquivalent(a, b any) bool
}

// IDEquivalency treats entities with equal id fields as the same resource.
// The id field is a field named ID or Id, or one tagged json:"id".
type IDEquivalency struct{}

// IsEquivalent implements [Equivalency]. Values without an id field are
// never equivalent.
func (IDEquivalency) IsEquivalent(a, b any) bool {
	idA, ok := idOf(a)
	if !ok {
		return false
	}
	idB, ok := idOf(b)
	if !ok {
		return false
	}

	if !idA.IsValid() || !idB.IsValid() {
		return !idA.IsValid() && !idB.IsValid()
	}

	return reflect.DeepEqual(idA.Interface(), idB.Interface())
}

// idOf returns the id field of v. A nil pointer on the way yields an invalid
// value with ok set, so that two missing ids compare equal.
func idOf(v any) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}, true
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}

	t := rv.Type()
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "id" || (name == "" && strings.EqualFold(f.Name, "id")) {
			id := rv.Field(i)
			if (id.Kind() == reflect.Pointer || id.Kind() == reflect.Interface) && id.IsNil() {
				return reflect.Value{}, true
			}
			return id, true
		}
	}

	return reflect.Value{}, false
}
