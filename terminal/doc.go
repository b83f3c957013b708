// Package terminal interprets lab shell command lines.
//
// A line is split on whitespace (no quoting, escaping or operators), the
// command name is checked against the sandbox policy and then dispatched to
// one of a closed set of builtins operating on a vfs.FileSystem. Every
// outcome, success or failure, is returned as text by Execute; Run returns
// the same failures as errors for programmatic callers.
package terminal
