package mutate

import (
	"fmt"
	"strconv"
	"strings"
)

// treeSegment is one step of a tree path.
type treeSegment struct {
	Name    string
	Index   int
	Indexed bool
}

// String returns the segment in path notation.
func (s treeSegment) String() string {
	if s.Indexed {
		return fmt.Sprintf("%s[%d]", s.Name, s.Index)
	}

	return s.Name
}

// normalizeTreePath converts slashes to dots and trims outer separators.
func normalizeTreePath(path string) string {
	return strings.Trim(strings.ReplaceAll(strings.TrimSpace(path), "/", "."), ".")
}

// parseTreePath parses a field path string into segments.
// Supports: "field", "nested.field", "items[0]", "/data/items[0]/productId".
func parseTreePath(path string) ([]treeSegment, error) {
	clean := normalizeTreePath(path)
	if clean == "" {
		return nil, fmt.Errorf("%w: empty path %q", ErrMalformedFieldPath, path)
	}

	var segments []treeSegment

	for _, part := range strings.Split(clean, ".") {
		if part == "" {
			return nil, fmt.Errorf("%w: %q: empty segment", ErrMalformedFieldPath, path)
		}

		seg, err := parseTreeSegment(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrMalformedFieldPath, path, err)
		}

		segments = append(segments, seg)
	}

	return segments, nil
}

func parseTreeSegment(part string) (treeSegment, error) {
	open := strings.IndexByte(part, '[')
	if open < 0 {
		if strings.IndexByte(part, ']') >= 0 {
			return treeSegment{}, fmt.Errorf("unbalanced bracket in %q", part)
		}

		return treeSegment{Name: part}, nil
	}

	if !strings.HasSuffix(part, "]") {
		return treeSegment{}, fmt.Errorf("unbalanced bracket in %q", part)
	}

	name := part[:open]
	if name == "" {
		return treeSegment{}, fmt.Errorf("index without field name in %q", part)
	}

	idx, err := strconv.Atoi(part[open+1 : len(part)-1])
	if err != nil || idx < 0 {
		return treeSegment{}, fmt.Errorf("invalid index in %q", part)
	}

	return treeSegment{Name: name, Index: idx, Indexed: true}, nil
}
