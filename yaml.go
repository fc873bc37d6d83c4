package cio

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalidDocument reports a document that decoded but cannot be mapped
// onto a [Value] tree.
var ErrInvalidDocument = errors.New("invalid document")

// FromYAML decodes a YAML document (or JSON, which YAML subsumes) into a
// [Value]. Object key order is preserved exactly as written, which is what
// keeps rendered column order stable. An empty document decodes to Null.
func FromYAML(data []byte) (Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Value{}, fmt.Errorf("cio: decode: %w", err)
	}
	if root.Kind == 0 {
		return Null(), nil
	}
	return fromNode(&root)
}

func fromNode(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return fromNode(n.Content[0])
	case yaml.SequenceNode:
		elems := make([]Value, len(n.Content))
		for i, c := range n.Content {
			v, err := fromNode(c)
			if err != nil {
				return Value{}, err
			}
			elems[i] = v
		}
		return Array(elems...), nil
	case yaml.MappingNode:
		members := make([]Member, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := fromNode(n.Content[i+1])
			if err != nil {
				return Value{}, err
			}
			members = append(members, Member{Key: n.Content[i].Value, Value: v})
		}
		return Object(members...), nil
	case yaml.ScalarNode:
		return fromScalarNode(n), nil
	case yaml.AliasNode:
		return fromNode(n.Alias)
	default:
		return Value{}, fmt.Errorf("cio: %w: node kind %d", ErrInvalidDocument, n.Kind)
	}
}

func fromScalarNode(n *yaml.Node) Value {
	switch n.Tag {
	case "!!null":
		return Null()
	case "!!bool":
		return Bool(n.Value == "true" || n.Value == "True" || n.Value == "TRUE")
	case "!!int", "!!float":
		return Number(n.Value)
	default:
		return String(n.Value)
	}
}
