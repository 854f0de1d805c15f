package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidTodoID      = errors.New("invalid todo id")
	ErrEmptyDescription   = errors.New("todo description is required")
	ErrDescriptionTooLong = errors.New("todo description is too long")
	ErrInvalidDescription = errors.New("todo description is not valid utf-8")
)
