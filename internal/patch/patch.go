package patch

import (
	"fmt"
	"reflect"
)

// Patch is an ordered list of operations. The empty patch is a no-op.
type Patch []Operation

// Size returns the number of operations in p.
func (p Patch) Size() int {
	return len(p)
}

// Apply runs the operations of p in order against the value target points
// to. Target is modified in place: when an operation fails, the operations
// before it stay applied. Use [ApplyTo] for all-or-nothing application.
//
// Every failure is returned as an [*OperationError].
func (p Patch) Apply(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return ErrInvalidTarget
	}

	root := rv.Elem()
	for i, op := range p {
		if op == nil {
			return &OperationError{Index: i, Err: ErrUnknownOperation}
		}
		if err := op.perform(root); err != nil {
			return &OperationError{Index: i, Op: op.Op(), Path: op.Target(), Err: err}
		}
	}

	return nil
}

// ApplyTo applies p to a deep copy of in and returns the copy. In is never
// modified; on any error it is returned unchanged alongside the error.
func ApplyTo[T any](p Patch, in T) (T, error) {
	if p.Size() == 0 {
		return in, nil
	}

	work, err := Clone(in)
	if err != nil {
		return in, err
	}

	if err = p.Apply(&work); err != nil {
		return in, err
	}

	return work, nil
}

// String renders p in a compact human-readable form, used in logs.
func (p Patch) String() string {
	s := "["
	for i, op := range p {
		if i > 0 {
			s += ", "
		}
		switch o := op.(type) {
		case Move:
			s += fmt.Sprintf("%s %s<-%s", o.Op(), o.Path, o.From)
		case Copy:
			s += fmt.Sprintf("%s %s<-%s", o.Op(), o.Path, o.From)
		case nil:
			s += "<nil>"
		default:
			s += fmt.Sprintf("%s %s", o.Op(), o.Target())
		}
	}
	return s + "]"
}
