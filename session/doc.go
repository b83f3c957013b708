// Package session manages lab sessions for a host application.
//
// Each Session owns one vfs.FileSystem and one terminal.Emulator and runs
// its command lines one at a time in submission order. Sessions can be saved
// to and restored from a dao.Service store, and report how their tree differs
// from the starter tree, with unified diffs for files. A restored session is
// compared against the starter tree too, not against its state when restored.
package session
