package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

func decodeYAML(data []byte) (any, error) {
	var n yaml.Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}

	return fromYAML(&n)
}

func fromYAML(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}

		return fromYAML(n.Content[0])
	case yaml.MappingNode:
		obj := &Object{}

		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := fromYAML(n.Content[i+1])
			if err != nil {
				return nil, err
			}

			obj.Set(n.Content[i].Value, v)
		}

		return obj, nil
	case yaml.SequenceNode:
		arr := &Array{Items: make([]any, 0, len(n.Content))}

		for _, c := range n.Content {
			v, err := fromYAML(c)
			if err != nil {
				return nil, err
			}

			arr.Items = append(arr.Items, v)
		}

		return arr, nil
	case yaml.AliasNode:
		return fromYAML(n.Alias)
	case yaml.ScalarNode:
		return fromYAMLScalar(n)
	default:
		return nil, fmt.Errorf("unsupported yaml node kind %d", n.Kind)
	}
}

func fromYAMLScalar(n *yaml.Node) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}

		return b, nil
	case "!!int", "!!float":
		return json.Number(n.Value), nil
	default:
		return n.Value, nil
	}
}

func encodeYAML(v any, indent int) ([]byte, error) {
	n, err := toYAML(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(max(indent, 2))

	if err := enc.Encode(n); err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}

	return buf.Bytes(), nil
}

func toYAML(v any) (*yaml.Node, error) {
	switch x := v.(type) {
	case *Object:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

		for _, m := range x.Members {
			val, err := toYAML(m.Value)
			if err != nil {
				return nil, err
			}

			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m.Key}
			n.Content = append(n.Content, key, val)
		}

		return n, nil
	case *Array:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}

		for _, it := range x.Items {
			val, err := toYAML(it)
			if err != nil {
				return nil, err
			}

			n.Content = append(n.Content, val)
		}

		return n, nil
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: fmt.Sprint(x)}, nil
	case json.Number:
		tag := "!!int"
		if strings.ContainsAny(string(x), ".eE") || strings.HasPrefix(strings.TrimLeft(string(x), "+-"), ".") {
			tag = "!!float"
		}

		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: string(x)}, nil
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: x}, nil
	default:
		return nil, fmt.Errorf("unsupported tree value %T", v)
	}
}
