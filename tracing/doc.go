// Package tracing wraps OpenTelemetry so that lab sessions can report one
// span per executed command line. Without Init the global no-op provider is
// used and spans cost nothing.
package tracing
