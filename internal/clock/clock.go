// Package clock is the time source for the date builtin and session
// timestamps.
package clock

import "time"

// NowFunc returns current time. Override in tests for determinism.
var NowFunc = time.Now

// Now returns NowFunc() truncated to whole seconds, the resolution the
// shell renders.
func Now() time.Time { return NowFunc().Truncate(time.Second) }
