package mapper

import (
	"errors"
	"fmt"
)

var (
	// ErrCoercion matches every *FieldError.
	ErrCoercion = errors.New("type coercion failed")
	// ErrMissingField is the cause of a FieldError for an absent required key.
	ErrMissingField = errors.New("field is missing")
	// ErrInvalidArgument is returned for enumeration codes outside the known set.
	ErrInvalidArgument = errors.New("invalid argument")

	errNotText     = errors.New("not a string or number")
	errNotAbsolute = errors.New("not an absolute url")
	errObjectForm  = errors.New("object form is not supported")
)

// FieldError описывает поле JSON, которое не удалось привести к нужному типу.
type FieldError struct {
	Entity string
	Field  string
	Err    error
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("map %s: %v", e.Entity, e.Err)
	}
	return fmt.Sprintf("map %s: field %q: %v", e.Entity, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func (e *FieldError) Is(target error) bool {
	return target == ErrCoercion
}
