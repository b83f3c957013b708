// Package policy holds the static sandbox configuration of a lab session: the
// commands a student may run, the absolute path prefixes that are off limits
// and the sandbox root every resolved path must stay under.
package policy
