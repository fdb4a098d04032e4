package writer

import (
	"bytes"
	"fmt"

	"github.com/achilleasa/scenedesc/scene"
	"gopkg.in/yaml.v3"
)

// WriteYAML encodes a scene as a YAML document. Sections are emitted in decoding order
// and entities sorted by name.
func WriteYAML(sc *scene.Scene) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}

	for _, c := range scene.AllCollections {
		section := &yaml.Node{Kind: yaml.MappingNode}
		for _, name := range sc.Names(c) {
			entity, _ := sc.Resolve(name, c)

			value := &yaml.Node{}
			if err := value.Encode(entityToDoc(entity)); err != nil {
				return nil, fmt.Errorf("writer: could not encode %s.%s: %w", c, name, err)
			}
			section.Content = append(section.Content, keyNode(name), value)
		}
		root.Content = append(root.Content, keyNode(string(c)), section)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("writer: could not encode scene: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func keyNode(key string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
}
