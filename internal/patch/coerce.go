package patch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
)

// RawValue is an undecoded JSON payload carried by an operation. It is
// decoded into the type found at the destination path when the operation
// runs, so list elements take the list's element type.
type RawValue []byte

// MarshalJSON returns the raw payload, or null when it is empty.
func (r RawValue) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return r, nil
}

func isNilPayload(value any) bool {
	switch raw := value.(type) {
	case nil:
		return true
	case RawValue:
		return isJSONNull(raw)
	case json.RawMessage:
		return isJSONNull(raw)
	}
	return false
}

func isJSONNull(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// coerce converts a payload into a value of type t.
func coerce(value any, t reflect.Type) (reflect.Value, error) {
	switch raw := value.(type) {
	case RawValue:
		return decode(raw, t)
	case json.RawMessage:
		return decode(raw, t)
	}

	if value == nil {
		return null(t)
	}

	return convert(reflect.ValueOf(value), t)
}

func null(t reflect.Type) (reflect.Value, error) {
	if !isNullable(t) {
		return reflect.Value{}, fmt.Errorf("%w: null for %s", ErrNotNullable, t)
	}
	return reflect.Zero(t), nil
}

func decode(raw []byte, t reflect.Type) (reflect.Value, error) {
	if isJSONNull(raw) {
		return null(t)
	}

	ptr := reflect.New(t)
	if err := json.Unmarshal(raw, ptr.Interface()); err != nil {
		return reflect.Value{}, fmt.Errorf("%w: cannot decode %s into %s: %w", ErrTypeMismatch, raw, t, err)
	}

	return ptr.Elem(), nil
}

func convert(v reflect.Value, t reflect.Type) (reflect.Value, error) {
	vt := v.Type()

	switch {
	case vt.AssignableTo(t):
		return v, nil
	case t.Kind() == reflect.Pointer && vt.AssignableTo(t.Elem()):
		return box(v, t), nil
	case v.Kind() == reflect.Pointer:
		if v.IsNil() {
			return null(t)
		}
		return convert(v.Elem(), t)
	case isNumeric(v.Kind()) && isNumeric(t.Kind()):
		return convertNumber(v, t)
	case t.Kind() == reflect.Pointer && isNumeric(v.Kind()) && isNumeric(t.Elem().Kind()):
		n, err := convertNumber(v, t.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		return box(n, t), nil
	case v.Kind() == t.Kind() && v.Kind() != reflect.Struct && vt.ConvertibleTo(t):
		return v.Convert(t), nil
	}

	// maps into structs and similar shape changes go through JSON
	raw, err := json.Marshal(v.Interface())
	if err != nil {
		return reflect.Value{}, fmt.Errorf("%w: %s into %s: %w", ErrTypeMismatch, vt, t, err)
	}

	return decode(raw, t)
}

func box(v reflect.Value, t reflect.Type) reflect.Value {
	p := reflect.New(t.Elem())
	p.Elem().Set(v)
	return p
}

func isNumeric(k reflect.Kind) bool {
	return isInt(k) || isUint(k) || isFloat(k)
}

func isInt(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUint(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

// convertNumber converts between numeric kinds, refusing anything that
// would lose information.
func convertNumber(v reflect.Value, t reflect.Type) (reflect.Value, error) {
	mismatch := fmt.Errorf("%w: %v does not fit %s", ErrTypeMismatch, v.Interface(), t)
	out := reflect.New(t).Elem()

	switch {
	case isInt(t.Kind()):
		var n int64
		switch {
		case isInt(v.Kind()):
			n = v.Int()
		case isUint(v.Kind()):
			if v.Uint() > math.MaxInt64 {
				return reflect.Value{}, mismatch
			}
			n = int64(v.Uint())
		default:
			f := v.Float()
			if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
				return reflect.Value{}, mismatch
			}
			n = int64(f)
		}
		if out.OverflowInt(n) {
			return reflect.Value{}, mismatch
		}
		out.SetInt(n)
	case isUint(t.Kind()):
		var n uint64
		switch {
		case isInt(v.Kind()):
			if v.Int() < 0 {
				return reflect.Value{}, mismatch
			}
			n = uint64(v.Int())
		case isUint(v.Kind()):
			n = v.Uint()
		default:
			f := v.Float()
			if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
				return reflect.Value{}, mismatch
			}
			n = uint64(f)
		}
		if out.OverflowUint(n) {
			return reflect.Value{}, mismatch
		}
		out.SetUint(n)
	default:
		var f float64
		switch {
		case isInt(v.Kind()):
			f = float64(v.Int())
		case isUint(v.Kind()):
			f = float64(v.Uint())
		default:
			f = v.Float()
		}
		if out.OverflowFloat(f) {
			return reflect.Value{}, mismatch
		}
		out.SetFloat(f)
	}

	return out, nil
}
