// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package patch

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by patch execution and decoding. Callers match
// them with [errors.Is]; execution errors are additionally wrapped in
// [*OperationError] which carries the failing operation.
var (
	// ErrTestFailed is returned when a test operation finds a value that
	// differs from the expected one.
	ErrTestFailed = errors.New("test against path failed")

	// ErrNotNullable is returned when an operation would remove or null out
	// a field whose type has no nil value (bool, numbers, strings, structs).
	ErrNotNullable = errors.New("value is not nullable")

	// ErrUnresolvablePath is returned when a path segment does not exist,
	// an index is out of range, or the `~` sentinel is misused.
	ErrUnresolvablePath = errors.New("unresolvable path")

	// ErrTypeMismatch is returned when a payload cannot be converted to the
	// type found at the destination path.
	ErrTypeMismatch = errors.New("value type mismatch")

	// ErrUnknownOperation is returned by the wire decoder for an op name it
	// does not recognise.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrInvalidOperation is returned by the wire decoder when an operation
	// lacks a required member (path, or from for move and copy).
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrInvalidTarget is returned when a patch is applied to something other
	// than a non-nil pointer.
	ErrInvalidTarget = errors.New("patch target must be a non-nil pointer")

	// ErrClone is returned when a deep copy of a value cannot be produced.
	ErrClone = errors.New("error cloning value")
)

// OperationError describes a failed operation inside a patch.
type OperationError struct {
	// Index is the position of the failed operation inside the patch.
	Index int
	// Op is the operation kind.
	Op OpType
	// Path is the target path of the operation.
	Path string
	// Err is the underlying cause, usually wrapping one of the sentinels.
	Err error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("operation %d (%s %q): %v", e.Index, e.Op, e.Path, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
