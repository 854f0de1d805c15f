// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package diff computes a [patch.Patch] that turns one value into another.
//
// Lists are compared element by element with an LCS-style sequence matcher,
// everything else is compared field by field. Applying the result to the
// original yields a value equal to the modified one:
//
//	p, _ := diff.Diff(before, after)
//	got, _ := patch.ApplyTo(p, before) // reflect.DeepEqual(got, after)
package diff

import (
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/MKhiriev/go-diffsync/internal/patch"
)

// ErrIncompatibleTypes is returned when the two values have different types.
var ErrIncompatibleTypes = errors.New("cannot diff values of different types")

// Diff returns the operations that transform original into modified.
// Equal values produce an empty patch.
func Diff(original, modified any) (patch.Patch, error) {
	o := reflect.ValueOf(original)
	m := reflect.ValueOf(modified)

	if o.IsValid() && m.IsValid() && o.Type() != m.Type() {
		return nil, fmt.Errorf("%w: %s and %s", ErrIncompatibleTypes, o.Type(), m.Type())
	}

	d := &differ{ops: patch.Patch{}}

	var err error
	if isList(o) && isList(m) && !o.IsNil() && !m.IsNil() {
		err = d.list("", o, m)
	} else {
		err = d.graph("", o, m, false)
	}
	if err != nil {
		return nil, err
	}

	return d.ops, nil
}

type differ struct {
	ops patch.Patch
}

func (d *differ) emit(ops ...patch.Operation) {
	d.ops = append(d.ops, ops...)
}

// graph compares two values of the same static type found at path. Inside a
// list a nil element is replaced rather than removed, since removing would
// delete the element itself.
func (d *differ) graph(path string, o, m reflect.Value, inList bool) error {
	if equal(o, m) {
		return nil
	}

	if isNil(m) {
		if inList {
			original, err := value(o)
			if err != nil {
				return err
			}
			d.emit(patch.Test{Path: path, Value: original}, patch.Replace{Path: path, Value: nil})
			return nil
		}
		d.emit(patch.Remove{Path: path})
		return nil
	}

	if isLeaf(m.Type()) || isNil(o) {
		return d.leaf(path, o, m, inList)
	}

	for o.Kind() == reflect.Pointer || o.Kind() == reflect.Interface {
		o, m = o.Elem(), m.Elem()
	}

	switch m.Kind() {
	case reflect.Slice:
		return d.list(path, o, m)
	case reflect.Struct:
		for _, f := range patch.Fields(m.Type()) {
			of, err := o.FieldByIndexErr(f.Index)
			if err != nil {
				return d.leaf(path, o, m, inList)
			}
			mf, err := m.FieldByIndexErr(f.Index)
			if err != nil {
				return d.leaf(path, o, m, inList)
			}
			if err = d.graph(patch.Join(path, f.Name), of, mf, false); err != nil {
				return err
			}
		}
		return nil
	}

	return d.leaf(path, o, m, inList)
}

// leaf emits a checked write of the whole value. A nil list element is
// overwritten in place, a nil field is added.
func (d *differ) leaf(path string, o, m reflect.Value, inList bool) error {
	original, err := value(o)
	if err != nil {
		return err
	}
	modified, err := value(m)
	if err != nil {
		return err
	}

	d.emit(patch.Test{Path: path, Value: original})
	if isNil(o) && !inList {
		d.emit(patch.Add{Path: path, Value: modified})
	} else {
		d.emit(patch.Replace{Path: path, Value: modified})
	}

	return nil
}

func equal(o, m reflect.Value) bool {
	if !o.IsValid() || !m.IsValid() {
		return isNil(o) && isNil(m)
	}
	return reflect.DeepEqual(o.Interface(), m.Interface())
}

func isNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

func isList(v reflect.Value) bool {
	return v.IsValid() && v.Kind() == reflect.Slice && !isLeaf(v.Type())
}

var (
	jsonMarshaler = reflect.TypeFor[json.Marshaler]()
	textMarshaler = reflect.TypeFor[encoding.TextMarshaler]()
)

// isLeaf reports whether values of t are compared and written as a whole.
func isLeaf(t reflect.Type) bool {
	if t.Implements(jsonMarshaler) || t.Implements(textMarshaler) ||
		reflect.PointerTo(t).Implements(jsonMarshaler) || reflect.PointerTo(t).Implements(textMarshaler) {
		return true
	}

	switch t.Kind() {
	case reflect.Pointer:
		return isLeaf(t.Elem())
	case reflect.Slice:
		return t.Elem().Kind() == reflect.Uint8
	case reflect.Struct:
		return len(patch.Fields(t)) == 0
	case reflect.Interface:
		return true
	}

	// primitives, maps, arrays
	return true
}

// value returns an independent copy of v suitable for an operation payload.
func value(v reflect.Value) (any, error) {
	if isNil(v) {
		return nil, nil
	}

	c, err := patch.Clone(v.Interface())
	if err != nil {
		return nil, err
	}

	return c, nil
}
