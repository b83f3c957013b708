// Package progress keeps per-session command counters (executed, succeeded,
// failed, denied) that a host can poll or subscribe to.
package progress
