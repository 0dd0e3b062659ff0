// Package json provides utilities for reading and writing the JSON configuration documents the schematics operate on.
package json

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/angular-eslint/schematics/sequencedmap"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Parse strips // and /* */ comments from data and parses the remaining JSON document.
// Objects are returned as *sequencedmap.Map[string, any] so key order is preserved,
// arrays as []any and scalars as their natural Go types.
func Parse(data []byte) (any, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(jsonc.ToJSON(data), &node); err != nil {
		return nil, err
	}

	if node.Kind == 0 || len(node.Content) == 0 && node.Kind == yaml.DocumentNode {
		return nil, fmt.Errorf("empty document")
	}

	return handleNode(&node)
}

// Serialize renders v as JSON with two-space indentation and a trailing newline.
// The format is fixed so generated files diff cleanly between runs.
func Serialize(v any) ([]byte, error) {
	var buf bytes.Buffer

	e := json.NewEncoder(&buf)
	e.SetIndent("", "  ")
	e.SetEscapeHTML(false)

	if err := e.Encode(v); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func handleNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		return handleNode(node.Content[0])
	case yaml.MappingNode:
		return handleMappingNode(node)
	case yaml.SequenceNode:
		return handleSequenceNode(node)
	case yaml.ScalarNode:
		return handleScalarNode(node)
	case yaml.AliasNode:
		return handleNode(node.Alias)
	default:
		return nil, fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

func handleMappingNode(node *yaml.Node) (any, error) {
	m := sequencedmap.New[string, any]()

	for i := 1; i < len(node.Content); i += 2 {
		key, err := handleNode(node.Content[i-1])
		if err != nil {
			return nil, err
		}

		value, err := handleNode(node.Content[i])
		if err != nil {
			return nil, err
		}

		m.Set(fmt.Sprintf("%v", key), value)
	}

	return m, nil
}

func handleSequenceNode(node *yaml.Node) (any, error) {
	s := make([]any, len(node.Content))

	for i, n := range node.Content {
		v, err := handleNode(n)
		if err != nil {
			return nil, err
		}

		s[i] = v
	}

	return s, nil
}

func handleScalarNode(node *yaml.Node) (any, error) {
	var v any

	if err := node.Decode(&v); err != nil {
		return nil, err
	}

	return v, nil
}
