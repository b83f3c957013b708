// Package vfs implements the in-memory file tree backing a lab session.
//
// The tree is a pure ownership hierarchy: a Directory owns its children in
// insertion order, nodes never point back at their parents and a node's name
// is only its key inside the parent. Every path handed to a FileSystem is
// resolved by NormalizePath, which is the single place that enforces sandbox
// containment.
//
//	fs := vfs.New("/home/student")
//	_ = fs.WriteFile("workspace/main.py", "print('hi')\n")
//	entries, _ := fs.ListDirectory("workspace")
//
// A FileSystem is owned by one session and is not safe for concurrent use.
package vfs
