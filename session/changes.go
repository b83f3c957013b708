package session

import (
	"log"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	sgdiff "github.com/sourcegraph/go-diff/diff"
	"github.com/viant/labsh/vfs"
)

// ChangeKind classifies a difference against the starter tree.
type ChangeKind string

const (
	Created ChangeKind = "create"
	Updated ChangeKind = "update"
	Deleted ChangeKind = "delete"
)

// Change describes one entry that differs from the starter tree. Diff holds
// a unified diff for files and is empty for directories.
type Change struct {
	Kind    ChangeKind `json:"kind" yaml:"kind"`
	Path    string     `json:"path" yaml:"path"`
	IsDir   bool       `json:"isDir,omitempty" yaml:"isDir,omitempty"`
	Diff    string     `json:"diff,omitempty" yaml:"diff,omitempty"`
	Added   int        `json:"added,omitempty" yaml:"added,omitempty"`
	Removed int        `json:"removed,omitempty" yaml:"removed,omitempty"`
}

// compare reports creations and updates in current order, then deletions
// in baseline order.
func compare(root string, baseline, current *vfs.Directory) []Change {
	before := map[string]vfs.Node{}
	baseline.Walk(func(relative string, node vfs.Node) {
		before[relative] = node
	})
	after := map[string]vfs.Node{}

	var changes []Change
	current.Walk(func(relative string, node vfs.Node) {
		after[relative] = node
		previous, ok := before[relative]
		if ok && previous.Kind() != node.Kind() {
			changes = append(changes, newChange(Deleted, root, relative, previous, nil))
			ok = false
		}
		if !ok {
			changes = append(changes, newChange(Created, root, relative, nil, node))
			return
		}
		if file, isFile := node.(*vfs.File); isFile && file.Content != previous.(*vfs.File).Content {
			changes = append(changes, newChange(Updated, root, relative, previous, node))
		}
	})
	baseline.Walk(func(relative string, node vfs.Node) {
		if _, ok := after[relative]; !ok {
			changes = append(changes, newChange(Deleted, root, relative, node, nil))
		}
	})
	return changes
}

func newChange(kind ChangeKind, root, relative string, from, to vfs.Node) Change {
	location := strings.TrimSuffix(root, "/") + "/" + relative
	ret := Change{Kind: kind, Path: location}
	if firstNode(from, to).Kind() == vfs.KindDirectory {
		ret.IsDir = true
		return ret
	}
	var oldContent, newContent string
	fromFile, toFile := "a"+location, "b"+location
	if file, ok := from.(*vfs.File); ok {
		oldContent = file.Content
	} else {
		fromFile = "/dev/null"
	}
	if file, ok := to.(*vfs.File); ok {
		newContent = file.Content
	} else {
		toFile = "/dev/null"
	}
	ud := difflib.UnifiedDiff{
		A:        splitLines(oldContent),
		B:        splitLines(newContent),
		FromFile: fromFile,
		ToFile:   toFile,
		Context:  3,
	}
	patch, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		log.Printf("session: failed to diff %s: %v", location, err)
		return ret
	}
	ret.Diff = patch
	if patch == "" {
		return ret
	}
	fileDiff, err := sgdiff.ParseFileDiff([]byte(patch))
	if err != nil {
		log.Printf("session: failed to parse diff of %s: %v", location, err)
		return ret
	}
	stat := fileDiff.Stat()
	ret.Added = int(stat.Added + stat.Changed)
	ret.Removed = int(stat.Deleted + stat.Changed)
	return ret
}

func firstNode(from, to vfs.Node) vfs.Node {
	if from != nil {
		return from
	}
	return to
}

// splitLines keeps every line newline terminated without adding a phantom
// empty line after a trailing newline.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if last := len(lines) - 1; lines[last] == "" {
		lines = lines[:last]
	} else {
		lines[last] += "\n"
	}
	return lines
}
