package mockgen

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// Document is the in-memory shape Parse consumes: a mapping whose nested
// mappings preserve the key order of the source bytes. Plain Go maps lose
// insertion order, so the decoder builds ordered maps instead.
type Document = *orderedmap.OrderedMap[string, any]

// DecodeDocument decodes YAML or JSON bytes into nested ordered maps.
// JSON is a YAML subset, so a single decoder covers both.
func DecodeDocument(data []byte) (any, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, nil
		}
		return nodeValue(root.Content[0])
	}
	return nodeValue(&root)
}

// nodeValue converts a yaml.Node tree into ordered maps, slices and scalars.
func nodeValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.MappingNode:
		m := orderedmap.New[string, any]()
		for i := 0; i+1 < len(n.Content); i += 2 {
			value, err := nodeValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m.Set(n.Content[i].Value, value)
		}
		return m, nil
	case yaml.SequenceNode:
		items := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			value, err := nodeValue(c)
			if err != nil {
				return nil, err
			}
			items = append(items, value)
		}
		return items, nil
	case yaml.ScalarNode:
		var value any
		if err := n.Decode(&value); err != nil {
			return nil, fmt.Errorf("failed to decode scalar at line %d: %w", n.Line, err)
		}
		return value, nil
	case yaml.AliasNode:
		return nodeValue(n.Alias)
	default:
		return nil, nil
	}
}
