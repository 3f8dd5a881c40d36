package logger

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is matched by every name-validation failure.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotImplemented is returned by mutator forms that are not supported yet.
	ErrNotImplemented = errors.New("not implemented")
)

// NameError reports a level or color name that is not registered.
type NameError struct {
	Kind string // "level" or "color"
	Name string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("invalid %s name %q", e.Kind, e.Name)
}

// Unwrap lets errors.Is(err, ErrInvalidArgument) succeed.
func (e *NameError) Unwrap() error {
	return ErrInvalidArgument
}
