// Package extension provides run-time registries for action services and
// the Go types their methods accept and return.
//
// The registries are normally populated through the root labsh package,
// therefore most applications do not need to import this package directly.
package extension
