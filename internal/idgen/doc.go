// Package idgen issues lab session identifiers. Callers should treat the
// identifiers as opaque strings.
package idgen
