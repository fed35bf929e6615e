package spec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"fixture-generator/internal/format"
	"fixture-generator/internal/output"
)

// ErrInvalidStructure is returned when a structure file is not a mapping.
var ErrInvalidStructure = errors.New("invalid structure file")

const (
	keyFormat        = "format"
	keyTotalElements = "total_elements"
	keyHierarchy     = "hierarchy"
)

// StructureFileName returns the conventional structure file name for a family.
func StructureFileName(tag format.Tag) string {
	return tag.String() + "_structure.json"
}

// Marshal renders the specification as an indented structure document:
// {"format", "total_elements", "hierarchy"} with the hierarchy in insertion order.
func Marshal(s *Specification) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')
	writeKey(&buf, keyFormat)
	writeString(&buf, s.Format.String())
	buf.WriteByte(',')
	writeKey(&buf, keyTotalElements)
	fmt.Fprintf(&buf, "%d", s.Len())
	buf.WriteByte(',')
	writeKey(&buf, keyHierarchy)
	writeChildren(&buf, s.root)
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("indenting structure: %w", err)
	}

	out.WriteByte('\n')

	return out.Bytes(), nil
}

// Save writes the structure document to path atomically.
func Save(s *Specification, path string) error {
	data, err := Marshal(s)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}

	if err := output.WriteFile(path, data); err != nil {
		return fmt.Errorf("writing structure file: %w", err)
	}

	return nil
}

func writeChildren(buf *bytes.Buffer, n *Node) {
	buf.WriteByte('{')

	first := true
	sep := func() {
		if !first {
			buf.WriteByte(',')
		}

		first = false
	}

	if f := n.Field; f != nil {
		sep()
		writeKey(buf, AttrSourcePath)
		writeString(buf, f.SourcePath)

		keys := make([]string, 0, len(f.Attributes))
		for k := range f.Attributes {
			if k != AttrSourcePath {
				keys = append(keys, k)
			}
		}

		sort.Strings(keys)

		for _, k := range keys {
			sep()
			writeKey(buf, k)
			writeString(buf, f.Attributes[k])
		}
	}

	for _, c := range n.Children {
		sep()
		writeKey(buf, c.Name)
		writeChildren(buf, c)
	}

	buf.WriteByte('}')
}

func writeKey(buf *bytes.Buffer, k string) {
	writeString(buf, k)
	buf.WriteByte(':')
}

func writeString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	buf.Truncate(buf.Len() - 1)
}

// Load reads a structure file (JSON or YAML).
//
// Two shapes are accepted: the nested {"format", "total_elements",
// "hierarchy"} document written by Save, and the flat legacy shape
// {"format": ..., "<element>": {<attributes>}}.
func Load(path string) (*Specification, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read structure file %s: %w", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse structure file %s: %w", path, err)
	}

	return s, nil
}

// Parse parses structure file content.
func Parse(data []byte) (*Specification, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, ErrInvalidStructure
	}

	top := doc.Content[0]

	tag := format.Unknown
	if v := member(top, keyFormat); v != nil && v.Kind == yaml.ScalarNode {
		tag, _ = format.ParseTag(v.Value)
	}

	s := New(tag)

	if h := member(top, keyHierarchy); h != nil && h.Kind == yaml.MappingNode {
		if err := loadHierarchy(s, h, nil); err != nil {
			return nil, err
		}

		return s, nil
	}

	for i := 0; i+1 < len(top.Content); i += 2 {
		key, val := top.Content[i], top.Content[i+1]
		if val.Kind != yaml.MappingNode {
			continue
		}

		attrs, sourcePath := scalarMembers(val)
		if err := s.Add(NewFieldSpec(nil, key.Value, sourcePath, attrs)); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func loadHierarchy(s *Specification, n *yaml.Node, path []string) error {
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if val.Kind != yaml.MappingNode {
			continue
		}

		if attrs, sourcePath := scalarMembers(val); len(attrs) > 0 || sourcePath != "" {
			if err := s.Add(NewFieldSpec(path, key.Value, sourcePath, attrs)); err != nil {
				return err
			}
		}

		child := append(append([]string(nil), path...), key.Value)
		if err := loadHierarchy(s, val, child); err != nil {
			return err
		}
	}

	return nil
}

// scalarMembers returns the scalar members of a mapping, with source_path split out.
func scalarMembers(n *yaml.Node) (map[string]string, string) {
	var (
		attrs      map[string]string
		sourcePath string
	)

	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			continue
		}

		if key.Value == AttrSourcePath {
			sourcePath = val.Value

			continue
		}

		if attrs == nil {
			attrs = make(map[string]string)
		}

		attrs[key.Value] = val.Value
	}

	return attrs, sourcePath
}

func member(n *yaml.Node, name string) *yaml.Node {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == name {
			return n.Content[i+1]
		}
	}

	return nil
}
