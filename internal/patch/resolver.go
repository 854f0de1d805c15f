package patch

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Field describes an exported struct field addressable by a path segment.
type Field struct {
	// Name is the segment used when emitting paths: the json name if the
	// field carries one, the Go name otherwise.
	Name  string
	Index []int
}

type fieldTable struct {
	fields []Field
	exact  map[string][]int
	folded map[string][]int
}

var fieldCache sync.Map // reflect.Type -> *fieldTable

// Fields lists the addressable fields of struct type t in declaration order.
// Fields tagged `json:"-"` are skipped, promoted fields of embedded structs
// are included.
func Fields(t reflect.Type) []Field {
	return typeFields(t).fields
}

func typeFields(t reflect.Type) *fieldTable {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.(*fieldTable)
	}

	table := &fieldTable{
		exact:  make(map[string][]int),
		folded: make(map[string][]int),
	}

	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() || f.Anonymous {
			continue
		}

		name := f.Name
		if tag, ok := f.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}

		table.fields = append(table.fields, Field{Name: name, Index: f.Index})
		for _, alias := range []string{name, f.Name} {
			if _, ok := table.exact[alias]; !ok {
				table.exact[alias] = f.Index
			}
			if _, ok := table.folded[strings.ToLower(alias)]; !ok {
				table.folded[strings.ToLower(alias)] = f.Index
			}
		}
	}

	actual, _ := fieldCache.LoadOrStore(t, table)
	return actual.(*fieldTable)
}

func fieldIndex(t reflect.Type, name string) ([]int, bool) {
	table := typeFields(t)
	if idx, ok := table.exact[name]; ok {
		return idx, true
	}
	idx, ok := table.folded[strings.ToLower(name)]
	return idx, ok
}

// accessor reads and writes the value a path resolves to.
type accessor interface {
	// valueType is the static type a written value must have.
	valueType() (reflect.Type, error)
	get() (reflect.Value, error)
	set(value reflect.Value) error
	// add inserts into lists and sets everything else.
	add(value reflect.Value) error
	// remove deletes list elements and map keys and nulls fields.
	remove() (reflect.Value, error)
}

// location is the reflection-backed accessor: a resolved path: the container holding the final segment and
// the segment itself. A nil seg addresses the root.
type location struct {
	parent reflect.Value
	seg    *segment
	path   string
}

func locate(root reflect.Value, path string) (accessor, error) {
	segments, err := parsePath(path)
	if err != nil {
		return nil, err
	}

	if len(segments) == 0 {
		return location{parent: root, path: path}, nil
	}

	current := root
	for _, seg := range segments[:len(segments)-1] {
		if current, err = child(current, seg, path); err != nil {
			return nil, err
		}
	}

	parent, err := indirect(current, path)
	if err != nil {
		return nil, err
	}

	return location{parent: parent, seg: &segments[len(segments)-1], path: path}, nil
}

func indirect(v reflect.Value, path string) (reflect.Value, error) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: nil value on the way to %q", ErrUnresolvablePath, path)
		}
		v = v.Elem()
	}

	return v, nil
}

func child(v reflect.Value, seg segment, path string) (reflect.Value, error) {
	v, err := indirect(v, path)
	if err != nil {
		return reflect.Value{}, err
	}

	loc := location{parent: v, seg: &seg, path: path}
	return loc.get()
}

func (l location) unresolvable(format string, args ...any) error {
	return fmt.Errorf("%w: %s in %q", ErrUnresolvablePath, fmt.Sprintf(format, args...), l.path)
}

func (l location) field() (reflect.Value, error) {
	idx, ok := fieldIndex(l.parent.Type(), l.seg.name)
	if !ok {
		return reflect.Value{}, l.unresolvable("no field %q on %s", l.seg.name, l.parent.Type())
	}

	f, err := l.parent.FieldByIndexErr(idx)
	if err != nil {
		return reflect.Value{}, l.unresolvable("field %q: %v", l.seg.name, err)
	}

	return f, nil
}

func (l location) mapKey() (reflect.Value, error) {
	keyType := l.parent.Type().Key()
	if keyType.Kind() != reflect.String {
		return reflect.Value{}, l.unresolvable("unsupported map key type %s", keyType)
	}

	return reflect.ValueOf(l.seg.name).Convert(keyType), nil
}

func (l location) elementIndex(size int) (int, error) {
	if l.seg.append {
		return 0, l.unresolvable("%q does not address an existing element", AppendSentinel)
	}
	if !l.seg.isIndex {
		return 0, l.unresolvable("%q is not a list index", l.seg.name)
	}
	if l.seg.index >= size {
		return 0, l.unresolvable("index %d out of range [0,%d)", l.seg.index, size)
	}

	return l.seg.index, nil
}

// valueType is the static type a value written to this location must have.
func (l location) valueType() (reflect.Type, error) {
	if l.seg == nil {
		return l.parent.Type(), nil
	}

	switch l.parent.Kind() {
	case reflect.Struct:
		idx, ok := fieldIndex(l.parent.Type(), l.seg.name)
		if !ok {
			return nil, l.unresolvable("no field %q on %s", l.seg.name, l.parent.Type())
		}
		return l.parent.Type().FieldByIndex(idx).Type, nil
	case reflect.Slice, reflect.Array, reflect.Map:
		return l.parent.Type().Elem(), nil
	}

	return nil, l.unresolvable("cannot write into %s", l.parent.Kind())
}

func (l location) get() (reflect.Value, error) {
	if l.seg == nil {
		return l.parent, nil
	}

	switch l.parent.Kind() {
	case reflect.Struct:
		return l.field()
	case reflect.Slice, reflect.Array:
		i, err := l.elementIndex(l.parent.Len())
		if err != nil {
			return reflect.Value{}, err
		}
		return l.parent.Index(i), nil
	case reflect.Map:
		key, err := l.mapKey()
		if err != nil {
			return reflect.Value{}, err
		}
		v := l.parent.MapIndex(key)
		if !v.IsValid() {
			return reflect.Value{}, l.unresolvable("no key %q", l.seg.name)
		}
		return v, nil
	}

	return reflect.Value{}, l.unresolvable("cannot descend into %s", l.parent.Kind())
}

func (l location) set(value reflect.Value) error {
	if l.seg == nil {
		return assign(l.parent, value, l)
	}

	switch l.parent.Kind() {
	case reflect.Struct:
		f, err := l.field()
		if err != nil {
			return err
		}
		return assign(f, value, l)
	case reflect.Slice, reflect.Array:
		i, err := l.elementIndex(l.parent.Len())
		if err != nil {
			return err
		}
		return assign(l.parent.Index(i), value, l)
	case reflect.Map:
		key, err := l.mapKey()
		if err != nil {
			return err
		}
		if l.parent.IsNil() {
			if !l.parent.CanSet() {
				return l.unresolvable("map is not settable")
			}
			l.parent.Set(reflect.MakeMap(l.parent.Type()))
		}
		l.parent.SetMapIndex(key, value)
		return nil
	}

	return l.unresolvable("cannot write into %s", l.parent.Kind())
}

// add inserts into lists (an index or the append sentinel) and sets
// everything else.
func (l location) add(value reflect.Value) error {
	if l.seg == nil || l.parent.Kind() != reflect.Slice {
		if l.seg != nil && l.seg.append {
			return l.unresolvable("%q used on a non-list %s", AppendSentinel, l.parent.Kind())
		}
		return l.set(value)
	}

	if !l.parent.CanSet() {
		return l.unresolvable("list is not settable")
	}

	size := l.parent.Len()
	i := size
	switch {
	case l.seg.append:
	case l.seg.isIndex:
		if l.seg.index > size {
			return l.unresolvable("index %d out of range [0,%d]", l.seg.index, size)
		}
		i = l.seg.index
	default:
		return l.unresolvable("%q is not a list index", l.seg.name)
	}

	out := reflect.MakeSlice(l.parent.Type(), 0, size+1)
	out = reflect.AppendSlice(out, l.parent.Slice(0, i))
	out = reflect.Append(out, value)
	out = reflect.AppendSlice(out, l.parent.Slice(i, size))
	l.parent.Set(out)

	return nil
}

// remove deletes list elements and map keys and nulls fields. The removed
// value is returned as an independent copy.
func (l location) remove() (reflect.Value, error) {
	if l.seg != nil && l.parent.Kind() == reflect.Slice {
		if !l.parent.CanSet() {
			return reflect.Value{}, l.unresolvable("list is not settable")
		}

		size := l.parent.Len()
		i, err := l.elementIndex(size)
		if err != nil {
			return reflect.Value{}, err
		}

		removed := detach(l.parent.Index(i))
		out := reflect.MakeSlice(l.parent.Type(), 0, size-1)
		out = reflect.AppendSlice(out, l.parent.Slice(0, i))
		out = reflect.AppendSlice(out, l.parent.Slice(i+1, size))
		l.parent.Set(out)

		return removed, nil
	}

	if l.seg != nil && l.parent.Kind() == reflect.Map {
		key, err := l.mapKey()
		if err != nil {
			return reflect.Value{}, err
		}
		removed := l.parent.MapIndex(key)
		if !removed.IsValid() {
			return reflect.Value{}, l.unresolvable("no key %q", l.seg.name)
		}
		l.parent.SetMapIndex(key, reflect.Value{})
		return removed, nil
	}

	current, err := l.get()
	if err != nil {
		return reflect.Value{}, err
	}

	if !isNullable(current.Type()) {
		return reflect.Value{}, fmt.Errorf("%w: %s at %q", ErrNotNullable, current.Type(), l.path)
	}

	removed := detach(current)
	if err = assign(current, reflect.Zero(current.Type()), l); err != nil {
		return reflect.Value{}, err
	}

	return removed, nil
}

func assign(dst, value reflect.Value, l location) error {
	if !dst.CanSet() {
		return l.unresolvable("value is not settable")
	}
	dst.Set(value)
	return nil
}

func detach(v reflect.Value) reflect.Value {
	out := reflect.New(v.Type()).Elem()
	out.Set(v)
	return out
}

func isNullable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return true
	}
	return false
}
