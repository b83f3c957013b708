package idgen

import "github.com/google/uuid"

// NewFunc returns a new session identifier; tests may replace it.
var NewFunc = func() string { return uuid.New().String() }

// New returns a new session identifier.
func New() string { return NewFunc() }

// Valid reports whether id looks like an identifier New could have issued.
// Store implementations use it to keep ids from being turned into paths.
func Valid(id string) bool {
	if id == "" || len(id) > 128 {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}
