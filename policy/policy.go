// Package policy describes which commands and paths a lab session may touch.
// A Policy is created once from lab configuration and is treated as an
// immutable value afterwards; callers share it by pointer but never mutate it.

package policy

import (
	"context"
	"fmt"
	"path"
	"strings"
)

// DefaultSandboxRoot is used when configuration does not name a root.
const DefaultSandboxRoot = "/home/student"

// DefaultAllowList lists the builtins a default lab session exposes.
var DefaultAllowList = []string{
	"help", "ls", "cd", "pwd", "cat", "echo", "mkdir", "touch",
	"clear", "whoami", "date", "rm", "python", "node", "gcc",
}

// DefaultBlockedPaths lists system locations a lab never exposes.
var DefaultBlockedPaths = []string{
	"/etc", "/usr", "/bin", "/sbin", "/var", "/root", "/proc", "/sys", "/dev",
}

// Policy represents the sandbox settings for a lab session.
//
//   - AllowList enumerates command names that may be dispatched (empty => none).
//   - BlockList names commands that are refused even when allow-listed.
//   - BlockedPaths lists absolute path prefixes reported by IsPathBlocked.
//   - SandboxRoot is the directory no resolved path may escape.
type Policy struct {
	AllowList    []string
	BlockList    []string
	BlockedPaths []string
	SandboxRoot  string
}

// ---------------------------------------------------------------------------
// Config <-> Policy converters
// ---------------------------------------------------------------------------

// Config represents the declarative, serialisable form of a Policy.
type Config struct {
	AllowList    []string `json:"allow,omitempty" yaml:"allow,omitempty"`
	BlockList    []string `json:"block,omitempty" yaml:"block,omitempty"`
	BlockedPaths []string `json:"blockedPaths,omitempty" yaml:"blockedPaths,omitempty"`
	SandboxRoot  string   `json:"sandboxRoot,omitempty" yaml:"sandboxRoot,omitempty"`
}

// Validate reports settings that cannot produce a usable policy.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.SandboxRoot != "" && !strings.HasPrefix(c.SandboxRoot, "/") {
		return fmt.Errorf("policy.sandboxRoot must be absolute: %q", c.SandboxRoot)
	}
	for _, p := range c.BlockedPaths {
		if !strings.HasPrefix(p, "/") {
			return fmt.Errorf("policy.blockedPaths entry must be absolute: %q", p)
		}
	}
	for _, name := range c.AllowList {
		if name == "" || strings.ContainsAny(name, " \t/") {
			return fmt.Errorf("policy.allow entry is not a command name: %q", name)
		}
	}
	return nil
}

// Default returns the policy used when a lab supplies no configuration.
func Default() *Policy {
	return &Policy{
		AllowList:    append([]string(nil), DefaultAllowList...),
		BlockedPaths: append([]string(nil), DefaultBlockedPaths...),
		SandboxRoot:  DefaultSandboxRoot,
	}
}

// ToConfig converts a runtime Policy into a persistable Config.
func ToConfig(p *Policy) *Config {
	if p == nil {
		return nil
	}
	return &Config{
		AllowList:    append([]string(nil), p.AllowList...),
		BlockList:    append([]string(nil), p.BlockList...),
		BlockedPaths: append([]string(nil), p.BlockedPaths...),
		SandboxRoot:  p.SandboxRoot,
	}
}

// FromConfig converts a stored Config back to a Policy. Empty allow-list and
// root fall back to the defaults; a nil config yields Default().
func FromConfig(c *Config) *Policy {
	if c == nil {
		return Default()
	}
	ret := &Policy{
		AllowList:    append([]string(nil), c.AllowList...),
		BlockList:    append([]string(nil), c.BlockList...),
		BlockedPaths: append([]string(nil), c.BlockedPaths...),
		SandboxRoot:  c.SandboxRoot,
	}
	if len(ret.AllowList) == 0 {
		ret.AllowList = append([]string(nil), DefaultAllowList...)
	}
	if ret.SandboxRoot == "" {
		ret.SandboxRoot = DefaultSandboxRoot
	}
	ret.SandboxRoot = path.Clean(ret.SandboxRoot)
	return ret
}

// Root returns the sandbox root, DefaultSandboxRoot for a nil policy.
func (p *Policy) Root() string {
	if p == nil || p.SandboxRoot == "" {
		return DefaultSandboxRoot
	}
	return p.SandboxRoot
}

// IsCommandAllowed evaluates BlockList / AllowList by exact, case-sensitive
// comparison of the command name. A nil policy allows nothing.
func (p *Policy) IsCommandAllowed(name string) bool {
	if p == nil || name == "" {
		return false
	}
	// BlockList has priority.
	for _, b := range p.BlockList {
		if name == b {
			return false
		}
	}
	for _, a := range p.AllowList {
		if name == a {
			return true
		}
	}
	return false
}

// Commands returns the allow-listed command names in configuration order.
func (p *Policy) Commands() []string {
	if p == nil {
		return nil
	}
	ret := make([]string, 0, len(p.AllowList))
	for _, name := range p.AllowList {
		if p.IsCommandAllowed(name) {
			ret = append(ret, name)
		}
	}
	return ret
}

// IsPathBlocked reports whether candidate equals or lies under one of the
// blocked prefixes. Matching is per path segment, so "/etcetera" is not
// blocked by "/etc". The check is advisory: the file system only enforces
// sandbox containment.
func (p *Policy) IsPathBlocked(candidate string) bool {
	if p == nil || candidate == "" {
		return false
	}
	candidate = path.Clean(candidate)
	for _, prefix := range p.BlockedPaths {
		if HasPathPrefix(candidate, path.Clean(prefix)) {
			return true
		}
	}
	return false
}

// HasPathPrefix reports whether p equals prefix or is nested under it.
// Both arguments are expected to be clean absolute paths.
func HasPathPrefix(p, prefix string) bool {
	if prefix == "/" {
		return strings.HasPrefix(p, "/")
	}
	if p == prefix {
		return true
	}
	return strings.HasPrefix(p, prefix+"/")
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type ctxKeyT struct{}

var ctxKey ctxKeyT

// WithPolicy embeds policy in ctx.
func WithPolicy(ctx context.Context, p *Policy) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey, p)
}

// FromContext extracts the policy stored by WithPolicy, nil when absent.
func FromContext(ctx context.Context) *Policy {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxKey).(*Policy); ok {
		return v
	}
	return nil
}
