package vfs

import "errors"

// ErrorKind classifies file-system failures.
type ErrorKind int

const (
	// PathEscape means a path resolved outside the sandbox root.
	PathEscape ErrorKind = iota + 1
	NotFound
	NotADirectory
	IsADirectory
	AlreadyExists
	// InvalidContent means file content is not valid UTF-8 text.
	InvalidContent
)

func (k ErrorKind) String() string {
	switch k {
	case PathEscape:
		return "PathEscape"
	case NotFound:
		return "NotFound"
	case NotADirectory:
		return "NotADirectory"
	case IsADirectory:
		return "IsADirectory"
	case AlreadyExists:
		return "AlreadyExists"
	case InvalidContent:
		return "InvalidContent"
	default:
		return "Unknown"
	}
}

func (k ErrorKind) message() string {
	switch k {
	case PathEscape:
		return "Access denied: path is outside the sandbox"
	case NotFound:
		return "File or directory not found"
	case NotADirectory:
		return "Not a directory"
	case IsADirectory:
		return "Is a directory"
	case AlreadyExists:
		return "File or directory already exists"
	case InvalidContent:
		return "File content is not valid UTF-8 text"
	default:
		return "unknown error"
	}
}

// Error is returned by every FileSystem operation. Error() yields the
// shell-facing message; Path carries the offending input for callers that
// want it.
type Error struct {
	Kind ErrorKind
	Path string
}

func (e *Error) Error() string {
	return e.Kind.message()
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrNotFound)
// works regardless of the path.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t != nil && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrPathEscape     = &Error{Kind: PathEscape}
	ErrNotFound       = &Error{Kind: NotFound}
	ErrNotADirectory  = &Error{Kind: NotADirectory}
	ErrIsADirectory   = &Error{Kind: IsADirectory}
	ErrAlreadyExists  = &Error{Kind: AlreadyExists}
	ErrInvalidContent = &Error{Kind: InvalidContent}
)

func newError(kind ErrorKind, path string) *Error {
	return &Error{Kind: kind, Path: path}
}

// KindOf returns the kind of a file-system error, 0 when err is not one.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
