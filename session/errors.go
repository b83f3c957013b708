package session

import "errors"

var (
	// ErrSessionNotFound is returned when no live session has the given id.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExists is returned when opening a session with an id that is
	// already live.
	ErrSessionExists = errors.New("session already exists")
)
