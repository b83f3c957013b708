package terminal

import (
	"errors"
	"fmt"
)

// Interpreter failures. File-system failures come from the vfs package and
// are matched with its own sentinels.
var (
	ErrCommandNotAllowed = errors.New("command not found or not allowed")
	ErrCommandNotFound   = errors.New("command not found")
	ErrMissingOperand    = errors.New("missing operand")
)

// Error reports a failed command line. Error() renders the shell text
// "<command>: <message>"; Unwrap exposes the underlying failure.
type Error struct {
	Command string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Command, e.Err.Error())
}

func (e *Error) Unwrap() error {
	return e.Err
}

// usageError is a MissingOperand variant carrying the expected form.
type usageError struct {
	usage string
}

func (u *usageError) Error() string {
	return "usage: " + u.usage
}

func (u *usageError) Is(target error) bool {
	return target == ErrMissingOperand
}
