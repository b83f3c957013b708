package vfs

// Kind discriminates the two node variants.
type Kind int

const (
	KindFile Kind = iota + 1
	KindDirectory
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return "unknown"
	}
}

// Node is either a *File or a *Directory.
type Node interface {
	Kind() Kind
	// Size is the content length for files and 0 for directories.
	Size() int
	clone() Node
}

// File holds text content.
type File struct {
	Content string
}

func (f *File) Kind() Kind { return KindFile }

func (f *File) Size() int { return len(f.Content) }

func (f *File) clone() Node { return &File{Content: f.Content} }

// Directory owns an insertion-ordered mapping of child nodes. Mutators are
// unexported so the tree can only change through FileSystem operations.
type Directory struct {
	names    []string
	children map[string]Node
}

// NewDirectory creates an empty directory.
func NewDirectory() *Directory {
	return &Directory{children: map[string]Node{}}
}

func (d *Directory) Kind() Kind { return KindDirectory }

func (d *Directory) Size() int { return 0 }

func (d *Directory) clone() Node { return d.Clone() }

// Len returns the number of children.
func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.names)
}

// Names returns child names in insertion order.
func (d *Directory) Names() []string {
	if d == nil {
		return nil
	}
	return append([]string(nil), d.names...)
}

// Child returns the named child.
func (d *Directory) Child(name string) (Node, bool) {
	if d == nil {
		return nil, false
	}
	ret, ok := d.children[name]
	return ret, ok
}

// Clone returns a deep copy of the subtree.
func (d *Directory) Clone() *Directory {
	if d == nil {
		return nil
	}
	ret := &Directory{
		names:    make([]string, 0, len(d.names)),
		children: make(map[string]Node, len(d.children)),
	}
	for _, name := range d.names {
		ret.names = append(ret.names, name)
		ret.children[name] = d.children[name].clone()
	}
	return ret
}

// put stores node under name; an existing entry keeps its position.
func (d *Directory) put(name string, node Node) {
	if d.children == nil {
		d.children = map[string]Node{}
	}
	if _, ok := d.children[name]; !ok {
		d.names = append(d.names, name)
	}
	d.children[name] = node
}

func (d *Directory) remove(name string) bool {
	if _, ok := d.children[name]; !ok {
		return false
	}
	delete(d.children, name)
	for i, candidate := range d.names {
		if candidate == name {
			d.names = append(d.names[:i], d.names[i+1:]...)
			break
		}
	}
	return true
}

// Walk visits every node below d depth first in insertion order. The path
// passed to fn is relative to d, using "/" separators.
func (d *Directory) Walk(fn func(relative string, node Node)) {
	d.walk("", fn)
}

func (d *Directory) walk(prefix string, fn func(string, Node)) {
	if d == nil {
		return
	}
	for _, name := range d.names {
		child := d.children[name]
		relative := name
		if prefix != "" {
			relative = prefix + "/" + name
		}
		fn(relative, child)
		if dir, ok := child.(*Directory); ok {
			dir.walk(relative, fn)
		}
	}
}

// validName reports whether name can be stored as a single path segment.
func validName(name string) bool {
	switch name {
	case "", ".", "..":
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] == '/' {
			return false
		}
	}
	return true
}
