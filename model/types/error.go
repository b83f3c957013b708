package types

import (
	"errors"
	"fmt"
)

// Sentinels matched with errors.Is by callers of Service.Method and
// Executable.
var (
	ErrMethodNotFound = errors.New("method not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInvalidOutput  = errors.New("invalid output")
)

func NewMethodNotFoundError(name string) error {
	return fmt.Errorf("%w: %v", ErrMethodNotFound, name)
}

func NewInvalidInputError(in interface{}) error {
	return fmt.Errorf("%w %T", ErrInvalidInput, in)
}

func NewInvalidOutputError(out interface{}) error {
	return fmt.Errorf("%w %T", ErrInvalidOutput, out)
}
