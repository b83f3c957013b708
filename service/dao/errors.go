package dao

import "errors"

// Sentinel errors shared by every store implementation. Implementations may
// wrap them with the offending id; match with errors.Is.
var (
	// ErrNotFound reports that no record is stored under the id.
	ErrNotFound = errors.New("dao: not found")

	// ErrInvalidID reports an empty id or one that cannot be used as a
	// storage key, such as an id containing path separators.
	ErrInvalidID = errors.New("dao: invalid id")

	// ErrNilEntity reports an attempt to save a nil record.
	ErrNilEntity = errors.New("dao: nil entity")
)
