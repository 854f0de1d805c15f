package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-diffsync/models"
)

const (
	FieldID          = "id"
	FieldDescription = "description"
)

// MaxDescriptionLength is the longest description accepted, in runes.
const MaxDescriptionLength = 1024

var defaultTodoFields = []string{FieldID, FieldDescription}

// TodoValidator checks todos that came out of a patch before they are
// persisted. Value, pointer and slice forms are accepted.
type TodoValidator struct{}

// NewTodoValidator returns the [Validator] the todo persistence callback
// runs before every write.
func NewTodoValidator() Validator {
	return &TodoValidator{}
}

// Validate implements [Validator]. fields limits the checks to the named
// fields ([FieldID], [FieldDescription]); all of them are checked when none
// are given. Every violation wraps one of the package errors, and for a
// slice the index of the first invalid todo is reported.
func (v *TodoValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Todo:
		return v.validateTodo(value, fields...)
	case *models.Todo:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateTodo(*value, fields...)
	case []models.Todo:
		for i, todo := range value {
			if err := v.validateTodo(todo, fields...); err != nil {
				return fmt.Errorf("todo %d: %w", i, err)
			}
		}
		return nil
	default:
		return ErrUnsupportedType
	}
}

func (v *TodoValidator) validateTodo(todo models.Todo, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultTodoFields
	}

	for _, field := range fields {
		switch field {
		case FieldID:
			// 0 is a todo the store has not saved yet
			if todo.ID < 0 {
				return fmt.Errorf("%w: %d", ErrInvalidTodoID, todo.ID)
			}
		case FieldDescription:
			if err := validateDescription(todo.Description); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	return nil
}

func validateDescription(description string) error {
	if !utf8.ValidString(description) {
		return ErrInvalidDescription
	}
	if strings.TrimSpace(description) == "" {
		return ErrEmptyDescription
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return fmt.Errorf("%w: more than %d characters", ErrDescriptionTooLong, MaxDescriptionLength)
	}
	return nil
}
