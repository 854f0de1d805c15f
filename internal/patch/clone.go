package patch

import (
	"fmt"
	"reflect"

	"github.com/brunoga/deep"
)

// Clone returns a deep copy of v. On failure v itself is returned together
// with an error wrapping [ErrClone].
func Clone[T any](v T) (T, error) {
	c, err := deep.Copy(v)
	if err != nil {
		return v, fmt.Errorf("%w: %w", ErrClone, err)
	}

	return c, nil
}

func cloneValue(v reflect.Value) (reflect.Value, error) {
	if !v.IsValid() || ((v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) && v.IsNil()) {
		return v, nil
	}

	c, err := Clone(v.Interface())
	if err != nil {
		return reflect.Value{}, err
	}

	return reflect.ValueOf(c), nil
}
