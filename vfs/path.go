package vfs

import (
	"strings"

	"github.com/viant/labsh/policy"
)

// NormalizePath resolves input against the current directory and returns a
// clean absolute path inside the sandbox.
//
// Relative input is joined to the current directory; "." segments are
// dropped and ".." pops the previous segment. A relative resolution that
// lands on an ancestor of the sandbox root (for example "../../../.." from
// the root) is clamped to the root, the way a chroot treats "..". Absolute
// input is taken literally: it must resolve to the root or below it. Any
// other resolution fails with PathEscape. The function never panics,
// whatever the input.
func (f *FileSystem) NormalizePath(input string) (string, error) {
	absolute := strings.HasPrefix(input, "/")
	full := input
	if !absolute {
		full = f.currentDirectory + "/" + input
	}
	resolved := "/" + strings.Join(fold(full), "/")
	if policy.HasPathPrefix(resolved, f.sandboxRoot) {
		return resolved, nil
	}
	if !absolute && policy.HasPathPrefix(f.sandboxRoot, resolved) {
		return f.sandboxRoot, nil
	}
	return "", newError(PathEscape, input)
}

// fold resolves "." and ".." over the "/" separated segments of p.
func fold(p string) []string {
	var stack []string
	for _, segment := range strings.Split(p, "/") {
		switch segment {
		case "", ".":
		case "..":
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		default:
			stack = append(stack, segment)
		}
	}
	return stack
}

// segments returns the path of a resolved location relative to the sandbox
// root, one element per directory level.
func (f *FileSystem) segments(resolved string) []string {
	relative := strings.TrimPrefix(resolved, f.sandboxRoot)
	var ret []string
	for _, segment := range strings.Split(relative, "/") {
		if segment != "" {
			ret = append(ret, segment)
		}
	}
	return ret
}

// join builds an absolute path from sandbox-relative segments.
func (f *FileSystem) join(segments []string) string {
	if len(segments) == 0 {
		return f.sandboxRoot
	}
	if f.sandboxRoot == "/" {
		return "/" + strings.Join(segments, "/")
	}
	return f.sandboxRoot + "/" + strings.Join(segments, "/")
}
