package vfs

import (
	"path"
	"strings"
	"unicode/utf8"

	"github.com/viant/labsh/policy"
)

// Entry describes one child returned by ListDirectory.
type Entry struct {
	Name string `json:"name" yaml:"name"`
	Kind Kind   `json:"kind" yaml:"kind"`
	Size int    `json:"size" yaml:"size"`
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool { return e.Kind == KindDirectory }

// FileSystem is a sandboxed in-memory tree with a current-directory cursor.
type FileSystem struct {
	root             *Directory
	sandboxRoot      string
	currentDirectory string
}

// New creates a file system rooted at sandboxRoot and seeded with the
// starter tree. The current directory starts at the root. A relative or
// empty root is anchored at "/".
func New(sandboxRoot string) *FileSystem {
	ret := &FileSystem{sandboxRoot: cleanRoot(sandboxRoot)}
	ret.reset()
	return ret
}

func cleanRoot(root string) string {
	if root == "" {
		return policy.DefaultSandboxRoot
	}
	return path.Clean("/" + strings.TrimPrefix(root, "/"))
}

func (f *FileSystem) reset() {
	f.root = seedTree()
	f.currentDirectory = f.sandboxRoot
}

// SandboxRoot returns the immutable sandbox root.
func (f *FileSystem) SandboxRoot() string {
	return f.sandboxRoot
}

// CurrentDirectory returns the absolute working directory.
func (f *FileSystem) CurrentDirectory() string {
	return f.currentDirectory
}

// lookup walks sandbox-relative segments from the root. It stops with
// false as soon as a segment is missing or the walk would descend into a
// file.
func (f *FileSystem) lookup(segments []string) (Node, bool) {
	var node Node = f.root
	for _, segment := range segments {
		dir, ok := node.(*Directory)
		if !ok {
			return nil, false
		}
		if node, ok = dir.Child(segment); !ok {
			return nil, false
		}
	}
	return node, true
}

// ensureDirectory walks segments creating missing directories. A file in
// the way fails with IsADirectory, reported against target.
func (f *FileSystem) ensureDirectory(segments []string, target string) (*Directory, error) {
	dir := f.root
	for _, segment := range segments {
		child, ok := dir.Child(segment)
		if !ok {
			created := NewDirectory()
			dir.put(segment, created)
			dir = created
			continue
		}
		next, ok := child.(*Directory)
		if !ok {
			return nil, newError(IsADirectory, target)
		}
		dir = next
	}
	return dir, nil
}

// GetItem returns the node at p. The returned node is live: callers may
// read it but must change the tree through FileSystem methods.
func (f *FileSystem) GetItem(p string) (Node, bool) {
	resolved, err := f.NormalizePath(p)
	if err != nil {
		return nil, false
	}
	return f.lookup(f.segments(resolved))
}

// Exists reports whether p resolves to a node.
func (f *FileSystem) Exists(p string) bool {
	_, ok := f.GetItem(p)
	return ok
}

// IsDirectory reports whether p resolves to a directory.
func (f *FileSystem) IsDirectory(p string) bool {
	node, ok := f.GetItem(p)
	return ok && node.Kind() == KindDirectory
}

// IsFile reports whether p resolves to a file.
func (f *FileSystem) IsFile(p string) bool {
	node, ok := f.GetItem(p)
	return ok && node.Kind() == KindFile
}

// ListDirectory lists the children of p (the current directory when p is
// omitted or empty) in insertion order.
func (f *FileSystem) ListDirectory(p ...string) ([]Entry, error) {
	target := f.currentDirectory
	if len(p) > 0 && p[0] != "" {
		target = p[0]
	}
	resolved, err := f.NormalizePath(target)
	if err != nil {
		return nil, err
	}
	node, ok := f.lookup(f.segments(resolved))
	if !ok {
		return nil, newError(NotFound, target)
	}
	dir, ok := node.(*Directory)
	if !ok {
		return nil, newError(NotADirectory, target)
	}
	ret := make([]Entry, 0, dir.Len())
	for _, name := range dir.names {
		child := dir.children[name]
		ret = append(ret, Entry{Name: name, Kind: child.Kind(), Size: child.Size()})
	}
	return ret, nil
}

// ReadFile returns the content of the file at p.
func (f *FileSystem) ReadFile(p string) (string, error) {
	resolved, err := f.NormalizePath(p)
	if err != nil {
		return "", err
	}
	node, ok := f.lookup(f.segments(resolved))
	if !ok {
		return "", newError(NotFound, p)
	}
	file, ok := node.(*File)
	if !ok {
		return "", newError(IsADirectory, p)
	}
	return file.Content, nil
}

// WriteFile creates or overwrites the file at p, creating missing parent
// directories. Writing over a directory, or through a path whose parent
// segment is a file, fails with IsADirectory. Content must be valid UTF-8 so
// that snapshots encode it losslessly.
func (f *FileSystem) WriteFile(p, content string) error {
	resolved, err := f.NormalizePath(p)
	if err != nil {
		return err
	}
	if !utf8.ValidString(content) {
		return newError(InvalidContent, p)
	}
	segments := f.segments(resolved)
	if len(segments) == 0 {
		return newError(IsADirectory, p)
	}
	parent, err := f.ensureDirectory(segments[:len(segments)-1], p)
	if err != nil {
		return err
	}
	name := segments[len(segments)-1]
	if existing, ok := parent.Child(name); ok && existing.Kind() == KindDirectory {
		return newError(IsADirectory, p)
	}
	parent.put(name, &File{Content: content})
	return nil
}

// CreateDirectory creates the directory at p along with missing parents.
// It fails with AlreadyExists when the final segment is already taken by a
// file or a directory.
func (f *FileSystem) CreateDirectory(p string) error {
	resolved, err := f.NormalizePath(p)
	if err != nil {
		return err
	}
	segments := f.segments(resolved)
	if len(segments) == 0 {
		return newError(AlreadyExists, p)
	}
	parent, err := f.ensureDirectory(segments[:len(segments)-1], p)
	if err != nil {
		return err
	}
	name := segments[len(segments)-1]
	if _, ok := parent.Child(name); ok {
		return newError(AlreadyExists, p)
	}
	parent.put(name, NewDirectory())
	return nil
}

// ChangeDirectory moves the current directory to p and returns the new
// absolute value.
func (f *FileSystem) ChangeDirectory(p string) (string, error) {
	resolved, err := f.NormalizePath(p)
	if err != nil {
		return "", err
	}
	node, ok := f.lookup(f.segments(resolved))
	if !ok {
		return "", newError(NotFound, p)
	}
	if node.Kind() != KindDirectory {
		return "", newError(NotADirectory, p)
	}
	f.currentDirectory = resolved
	return resolved, nil
}

// Delete removes the entry at p together with its subtree. The sandbox root
// itself cannot be removed. When the current directory was inside the
// removed subtree it moves to the removed entry's parent.
func (f *FileSystem) Delete(p string) error {
	resolved, err := f.NormalizePath(p)
	if err != nil {
		return err
	}
	segments := f.segments(resolved)
	if len(segments) == 0 {
		return newError(PathEscape, p)
	}
	parentSegments := segments[:len(segments)-1]
	node, ok := f.lookup(parentSegments)
	if !ok {
		return newError(NotFound, p)
	}
	parent, ok := node.(*Directory)
	if !ok || !parent.remove(segments[len(segments)-1]) {
		return newError(NotFound, p)
	}
	if policy.HasPathPrefix(f.currentDirectory, resolved) {
		f.currentDirectory = f.join(parentSegments)
	}
	return nil
}
