package patch

import (
	"fmt"
	"reflect"
)

// OpType names an operation kind on the wire.
type OpType string

const (
	OpTest    OpType = "test"
	OpAdd     OpType = "add"
	OpRemove  OpType = "remove"
	OpReplace OpType = "replace"
	OpMove    OpType = "move"
	OpCopy    OpType = "copy"
)

// Operation is a single step of a [Patch]. The set of implementations is
// closed: [Test], [Add], [Remove], [Replace], [Move] and [Copy].
type Operation interface {
	// Op reports the operation kind.
	Op() OpType
	// Target reports the path the operation writes to (or checks, for Test).
	Target() string

	perform(root reflect.Value) error
}

// Test checks that the value at Path equals Value.
type Test struct {
	Path  string
	Value any
}

// Add inserts Value into a list at Path, or sets the field at Path.
type Add struct {
	Path  string
	Value any
}

// Remove deletes the list element at Path, or nulls the field at Path.
type Remove struct {
	Path string
}

// Replace overwrites the value at Path with Value.
type Replace struct {
	Path  string
	Value any
}

// Move removes the value at From and adds it at Path.
type Move struct {
	Path string
	From string
}

// Copy adds a deep copy of the value at From at Path.
type Copy struct {
	Path string
	From string
}

func (Test) Op() OpType    { return OpTest }
func (Add) Op() OpType     { return OpAdd }
func (Remove) Op() OpType  { return OpRemove }
func (Replace) Op() OpType { return OpReplace }
func (Move) Op() OpType    { return OpMove }
func (Copy) Op() OpType    { return OpCopy }

func (o Test) Target() string    { return o.Path }
func (o Add) Target() string     { return o.Path }
func (o Remove) Target() string  { return o.Path }
func (o Replace) Target() string { return o.Path }
func (o Move) Target() string    { return o.Path }
func (o Copy) Target() string    { return o.Path }

func (o Test) perform(root reflect.Value) error {
	loc, err := locate(root, o.Path)
	if err != nil {
		return err
	}

	current, err := loc.get()
	if err != nil {
		return err
	}

	if isNilPayload(o.Value) {
		if isNullable(current.Type()) && current.IsNil() {
			return nil
		}
		return fmt.Errorf("%w: expected null at %q", ErrTestFailed, o.Path)
	}

	expected, err := coerce(o.Value, current.Type())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTestFailed, err)
	}

	if !reflect.DeepEqual(current.Interface(), expected.Interface()) {
		return fmt.Errorf("%w: value at %q differs", ErrTestFailed, o.Path)
	}

	return nil
}

func (o Add) perform(root reflect.Value) error {
	loc, err := locate(root, o.Path)
	if err != nil {
		return err
	}

	t, err := loc.valueType()
	if err != nil {
		return err
	}

	value, err := coerce(o.Value, t)
	if err != nil {
		return err
	}

	return loc.add(value)
}

func (o Remove) perform(root reflect.Value) error {
	loc, err := locate(root, o.Path)
	if err != nil {
		return err
	}

	_, err = loc.remove()
	return err
}

func (o Replace) perform(root reflect.Value) error {
	loc, err := locate(root, o.Path)
	if err != nil {
		return err
	}

	if _, err = loc.get(); err != nil {
		return err
	}

	t, err := loc.valueType()
	if err != nil {
		return err
	}

	value, err := coerce(o.Value, t)
	if err != nil {
		return err
	}

	return loc.set(value)
}

func (o Move) perform(root reflect.Value) error {
	from, err := locate(root, o.From)
	if err != nil {
		return err
	}

	// removal fails before anything at Path is touched
	moved, err := from.remove()
	if err != nil {
		return err
	}

	to, err := locate(root, o.Path)
	if err != nil {
		return err
	}

	t, err := to.valueType()
	if err != nil {
		return err
	}

	value, err := coerce(moved.Interface(), t)
	if err != nil {
		return err
	}

	return to.add(value)
}

func (o Copy) perform(root reflect.Value) error {
	from, err := locate(root, o.From)
	if err != nil {
		return err
	}

	source, err := from.get()
	if err != nil {
		return err
	}

	copied, err := cloneValue(source)
	if err != nil {
		return err
	}

	to, err := locate(root, o.Path)
	if err != nil {
		return err
	}

	t, err := to.valueType()
	if err != nil {
		return err
	}

	value, err := coerce(copied.Interface(), t)
	if err != nil {
		return err
	}

	return to.add(value)
}
