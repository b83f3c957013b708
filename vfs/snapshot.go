package vfs

import (
	"log"
	"path"
	"strconv"
)

// Snapshot is a full-value copy of a FileSystem used for session
// persistence. FileSystem keeps child order in both JSON and YAML form.
type Snapshot struct {
	FileSystem       *Directory `json:"fileSystem" yaml:"fileSystem"`
	CurrentDirectory string     `json:"currentDirectory" yaml:"currentDirectory"`
	SandboxRoot      string     `json:"sandboxRoot" yaml:"sandboxRoot"`
}

// Serialize returns a deep copy of the tree and cursor state.
func (f *FileSystem) Serialize() *Snapshot {
	return &Snapshot{
		FileSystem:       f.root.Clone(),
		CurrentDirectory: f.currentDirectory,
		SandboxRoot:      f.sandboxRoot,
	}
}

// Deserialize replaces the tree and cursor with a copy of snapshot. A nil
// snapshot, a missing tree, a foreign sandbox root or an invalid entry name
// resets the file system to the seeded starter tree and returns false. A
// current directory that no longer resolves to a directory inside the
// sandbox falls back to the root.
func (f *FileSystem) Deserialize(snapshot *Snapshot) bool {
	if reason := snapshot.validate(f.sandboxRoot); reason != "" {
		log.Printf("vfs: discarding snapshot, %s; restoring starter tree", reason)
		f.reset()
		return false
	}
	f.root = snapshot.FileSystem.Clone()
	f.currentDirectory = f.sandboxRoot
	if cwd := snapshot.CurrentDirectory; cwd != "" && path.IsAbs(cwd) {
		if resolved, err := f.NormalizePath(cwd); err == nil && resolved == path.Clean(cwd) {
			if node, ok := f.lookup(f.segments(resolved)); ok && node.Kind() == KindDirectory {
				f.currentDirectory = resolved
			}
		}
	}
	return true
}

func (s *Snapshot) validate(sandboxRoot string) string {
	if s == nil {
		return "snapshot is missing"
	}
	if s.FileSystem == nil {
		return "file tree is missing"
	}
	if s.SandboxRoot != "" && cleanRoot(s.SandboxRoot) != sandboxRoot {
		return "sandbox root " + s.SandboxRoot + " does not match " + sandboxRoot
	}
	return validateDirectory(s.FileSystem, "")
}

func validateDirectory(dir *Directory, prefix string) string {
	for _, name := range dir.names {
		if !validName(name) {
			return "invalid entry name " + strconv.Quote(prefix+name)
		}
		switch child := dir.children[name].(type) {
		case *File:
			if child == nil {
				return "empty entry " + prefix + name
			}
		case *Directory:
			if child == nil {
				return "empty entry " + prefix + name
			}
			if reason := validateDirectory(child, prefix+name+"/"); reason != "" {
				return reason
			}
		default:
			return "empty entry " + prefix + name
		}
	}
	return ""
}
