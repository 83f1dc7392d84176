package manifest

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlCodec edits the node tree so comments and key order survive a write.
type yamlCodec struct{}

func (yamlCodec) parse(data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}
	if doc.Kind == 0 {
		doc = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}}
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: root is not a mapping", ErrInvalidManifest)
	}
	return &doc, nil
}

// lookup walks a dotted property through mappings.
func lookup(root *yaml.Node, property string) *yaml.Node {
	node := root
	for _, key := range strings.Split(property, ".") {
		if node.Kind != yaml.MappingNode {
			return nil
		}
		var next *yaml.Node
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == key {
				next = node.Content[i+1]
				break
			}
		}
		if next == nil {
			return nil
		}
		node = next
	}
	return node
}

func (c yamlCodec) get(data []byte, property string) (string, bool, error) {
	doc, err := c.parse(data)
	if err != nil {
		return "", false, err
	}
	node := lookup(doc.Content[0], property)
	if node == nil || node.Kind != yaml.ScalarNode || node.Tag == "!!null" {
		return "", false, nil
	}
	return node.Value, true, nil
}

func (c yamlCodec) has(data []byte, property string) (bool, error) {
	doc, err := c.parse(data)
	if err != nil {
		return false, err
	}
	return lookup(doc.Content[0], property) != nil, nil
}

func (c yamlCodec) set(data []byte, property string, value interface{}) ([]byte, error) {
	doc, err := c.parse(data)
	if err != nil {
		return nil, err
	}

	valueNode := &yaml.Node{}
	if err := valueNode.Encode(value); err != nil {
		return nil, err
	}

	node := doc.Content[0]
	keys := strings.Split(property, ".")
	for i, key := range keys {
		if node.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: %s", ErrNotAMapping, strings.Join(keys[:i], "."))
		}

		var next *yaml.Node
		for j := 0; j+1 < len(node.Content); j += 2 {
			if node.Content[j].Value == key {
				next = node.Content[j+1]
				if i == len(keys)-1 {
					if next.Kind == valueNode.Kind && next.Style != 0 {
						valueNode.Style = next.Style
					}
					valueNode.HeadComment = next.HeadComment
					valueNode.LineComment = next.LineComment
					node.Content[j+1] = valueNode
				}
				break
			}
		}

		if next == nil {
			next = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			if i == len(keys)-1 {
				next = valueNode
			}
			node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}, next)
		}
		node = next
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
