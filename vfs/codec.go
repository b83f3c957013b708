package vfs

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/viant/labsh/internal/yml"
	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the directory as a JSON object whose keys follow
// insertion order. Files become strings, directories nested objects.
func (d *Directory) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := d.encodeJSON(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d *Directory) encodeJSON(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	for i, name := range d.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')
		switch child := d.children[name].(type) {
		case *File:
			value, err := json.Marshal(child.Content)
			if err != nil {
				return err
			}
			buf.Write(value)
		case *Directory:
			if err := child.encodeJSON(buf); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unsupported node %T at %q", child, name)
		}
	}
	buf.WriteByte('}')
	return nil
}

// UnmarshalJSON decodes an object of name -> (string | object), keeping the
// key order of the document.
func (d *Directory) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	token, err := decoder.Token()
	if err != nil {
		return err
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected directory object, but had %v", token)
	}
	decoded, err := decodeJSONDirectory(decoder)
	if err != nil {
		return err
	}
	*d = *decoded
	return nil
}

// decodeJSONDirectory reads entries after the opening brace up to and
// including the closing one.
func decodeJSONDirectory(decoder *json.Decoder) (*Directory, error) {
	ret := NewDirectory()
	for {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		if delim, ok := token.(json.Delim); ok && delim == '}' {
			return ret, nil
		}
		name, ok := token.(string)
		if !ok {
			return nil, fmt.Errorf("expected entry name, but had %v", token)
		}
		if token, err = decoder.Token(); err != nil {
			return nil, err
		}
		switch actual := token.(type) {
		case string:
			ret.put(name, &File{Content: actual})
		case json.Delim:
			if actual != '{' {
				return nil, fmt.Errorf("entry %q: expected text or directory, but had %v", name, actual)
			}
			child, err := decodeJSONDirectory(decoder)
			if err != nil {
				return nil, err
			}
			ret.put(name, child)
		default:
			return nil, fmt.Errorf("entry %q: expected text or directory, but had %T", name, token)
		}
	}
}

// MarshalYAML encodes the directory as an ordered mapping node.
func (d *Directory) MarshalYAML() (interface{}, error) {
	return d.yamlNode(), nil
}

func (d *Directory) yamlNode() *yaml.Node {
	ret := (*yml.Node)(yml.NewMap())
	for _, name := range d.names {
		switch child := d.children[name].(type) {
		case *File:
			ret.Put(name, yml.NewText(child.Content))
		case *Directory:
			ret.Put(name, child.yamlNode())
		}
	}
	return (*yaml.Node)(ret)
}

// UnmarshalYAML decodes a mapping of name -> (scalar | mapping).
func (d *Directory) UnmarshalYAML(value *yaml.Node) error {
	decoded, err := decodeYAMLDirectory((*yml.Node)(value))
	if err != nil {
		return err
	}
	*d = *decoded
	return nil
}

func decodeYAMLDirectory(node *yml.Node) (*Directory, error) {
	ret := NewDirectory()
	err := node.Pairs(func(name string, value *yml.Node) error {
		switch {
		case value.IsText():
			ret.put(name, &File{Content: value.Value})
		case value.Kind == yaml.MappingNode:
			child, err := decodeYAMLDirectory(value)
			if err != nil {
				return err
			}
			ret.put(name, child)
		default:
			return fmt.Errorf("entry %q at line %d: expected text or directory", name, value.Line)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}
