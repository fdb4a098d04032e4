package reader

import (
	"github.com/achilleasa/scenedesc/scene"
	"gopkg.in/yaml.v3"
)

// Parse a YAML document.
func parseYAML(data []byte) (*node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &scene.ParseError{Reason: "malformed YAML document: " + err.Error(), Err: err}
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, &scene.ParseError{Reason: "empty YAML document"}
	}

	return yamlNode(doc.Content[0])
}

func yamlNode(yn *yaml.Node) (*node, error) {
	for yn.Kind == yaml.AliasNode {
		yn = yn.Alias
	}

	n := &node{line: yn.Line}
	switch yn.Kind {
	case yaml.MappingNode:
		n.kind = objectNode
		for i := 0; i+1 < len(yn.Content); i += 2 {
			key, err := yamlNode(yn.Content[i])
			if err != nil {
				return nil, err
			}
			if key.kind != stringNode {
				return nil, &scene.ParseError{Line: key.line, Reason: "mapping keys must be strings; got " + key.describe()}
			}
			value, err := yamlNode(yn.Content[i+1])
			if err != nil {
				return nil, err
			}
			n.keys = append(n.keys, key.str)
			n.values = append(n.values, value)
		}
	case yaml.SequenceNode:
		n.kind = arrayNode
		for _, item := range yn.Content {
			child, err := yamlNode(item)
			if err != nil {
				return nil, err
			}
			n.items = append(n.items, child)
		}
	case yaml.ScalarNode:
		if err := yamlScalar(yn, n); err != nil {
			return nil, err
		}
	default:
		return nil, &scene.ParseError{Line: yn.Line, Reason: "unsupported YAML node"}
	}

	return n, nil
}

func yamlScalar(yn *yaml.Node, n *node) error {
	var err error
	switch yn.ShortTag() {
	case "!!null":
		n.kind = nullNode
	case "!!bool":
		n.kind = boolNode
		err = yn.Decode(&n.b)
	case "!!int":
		var v int64
		n.kind = numberNode
		n.isInt = true
		err = yn.Decode(&v)
		n.num = float64(v)
	case "!!float":
		n.kind = numberNode
		err = yn.Decode(&n.num)
	default:
		// Timestamps, binary and custom tags are treated as plain strings.
		n.kind = stringNode
		n.str = yn.Value
	}

	if err != nil {
		return &scene.ParseError{Line: yn.Line, Reason: "invalid scalar: " + err.Error(), Err: err}
	}
	return nil
}
