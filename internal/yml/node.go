package yml

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type (
	Node yaml.Node
)

// Lookup returns the value node stored under name in a mapping node.
func (n *Node) Lookup(name string) *Node {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == name {
			return (*Node)(n.Content[i+1])
		}
	}
	return nil
}

// Pairs visits mapping entries in document order.
func (n *Node) Pairs(callback func(key string, node *Node) error) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("expected mapping node at line %d, but had %v", n.Line, kindName(n.Kind))
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i]
		if key.Kind != yaml.ScalarNode {
			return fmt.Errorf("expected scalar key at line %d, but had %v", key.Line, kindName(key.Kind))
		}
		if err := callback(key.Value, (*Node)(n.Content[i+1])); err != nil {
			return err
		}
	}
	return nil
}

// Put appends key/value to a mapping node, preserving insertion order.
func (n *Node) Put(key string, value *yaml.Node) {
	if n.Kind != yaml.MappingNode { //sanity check
		panic("not a map node")
	}
	n.Content = append(n.Content, NewText(key), value)
}

// IsText reports whether the node is a non-null scalar.
func (n *Node) IsText() bool {
	return n.Kind == yaml.ScalarNode && n.Tag != "!!null"
}

// NewMap creates an empty mapping node.
func NewMap() *yaml.Node {
	return &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
	}
}

// NewText creates a string scalar. Multi-line text uses literal style when a
// block scalar reads back unchanged, double-quoted style otherwise.
func NewText(value string) *yaml.Node {
	ret := &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
		Value: value,
	}
	if strings.Contains(value, "\n") {
		ret.Style = yaml.DoubleQuotedStyle
		if literalSafe(value) {
			ret.Style = yaml.LiteralStyle
		}
	}
	return ret
}

// literalSafe reports whether value survives a literal block scalar: it must
// start with visible text, have no carriage returns and end in at most one
// line break.
func literalSafe(value string) bool {
	if strings.Trim(value, "\n") == "" || strings.HasSuffix(value, "\n\n") {
		return false
	}
	switch value[0] {
	case '\n', ' ', '\t':
		return false
	}
	return !strings.Contains(value, "\r")
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
