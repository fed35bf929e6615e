package mutate

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"fixture-generator/internal/document"
	"fixture-generator/internal/match"
)

// Tree mutates JSON and YAML documents.
//
// A plain segment addresses an object member; "name[i]" addresses item i of
// the array bound to name. A plain segment reached at an array is tried
// against every item in turn and the first item that yields a mutation wins.
type Tree struct {
	logger *zap.Logger
}

// NewTree creates the tree strategy.
func NewTree(logger *zap.Logger) *Tree {
	return &Tree{logger: logger}
}

func (s *Tree) Mutate(doc document.Document, fieldPath string, mode Mode) (Outcome, error) {
	tree, ok := doc.(*document.Tree)
	if !ok {
		return Outcome{}, kindError("tree document", doc)
	}

	segments, err := parseTreePath(fieldPath)
	if err != nil {
		s.logger.Debug("malformed tree path", zap.String("path", fieldPath), zap.Error(err))

		return unchanged(doc, err), nil
	}

	if !mutateTree(tree.Root, segments, mode) {
		keys := treeKeys(tree.Root)

		return unchanged(doc, notFound(normalizeTreePath(fieldPath), firstUnknown(segments, keys), keys)), nil
	}

	return changed(doc, 1), nil
}

func mutateTree(node any, segments []treeSegment, mode Mode) bool {
	seg, rest := segments[0], segments[1:]

	if seg.Indexed {
		obj, ok := node.(*document.Object)
		if !ok {
			return false
		}

		v, ok := obj.Get(seg.Name)
		if !ok {
			return false
		}

		arr, ok := v.(*document.Array)
		if !ok || seg.Index >= len(arr.Items) {
			return false
		}

		if len(rest) == 0 {
			mutateItem(arr, seg.Index, mode)

			return true
		}

		return mutateTree(arr.Items[seg.Index], rest, mode)
	}

	switch x := node.(type) {
	case *document.Object:
		v, ok := x.Get(seg.Name)
		if !ok {
			return false
		}

		if len(rest) == 0 {
			mutateMember(x, seg.Name, mode)

			return true
		}

		return mutateTree(v, rest, mode)
	case *document.Array:
		for _, item := range x.Items {
			if mutateTree(item, segments, mode) {
				return true
			}
		}
	}

	return false
}

func mutateMember(obj *document.Object, key string, mode Mode) {
	switch mode {
	case Remove:
		obj.Delete(key)
	case CommentOut:
		obj.Rename(key, commentKey(obj, key))
	}
}

// commentKey returns the first free key among "commented-<key>",
// "commented-2-<key>", "commented-3-<key>" and so on.
func commentKey(obj *document.Object, key string) string {
	name := Marker + key

	for n := 2; obj.Index(name) >= 0; n++ {
		name = fmt.Sprintf("%s%d-%s", Marker, n, key)
	}

	return name
}

func mutateItem(arr *document.Array, idx int, mode Mode) {
	switch mode {
	case Remove:
		arr.Items = append(arr.Items[:idx], arr.Items[idx+1:]...)
	case CommentOut:
		arr.Items[idx] = Marker + document.Stringify(arr.Items[idx])
	}
}

// treeKeys returns every distinct member name of the tree in document order.
func treeKeys(root any) []string {
	var keys []string

	seen := make(map[string]struct{})

	var walk func(v any)
	walk = func(v any) {
		switch x := v.(type) {
		case *document.Object:
			for _, m := range x.Members {
				if _, ok := seen[m.Key]; !ok {
					seen[m.Key] = struct{}{}
					keys = append(keys, m.Key)
				}

				walk(m.Value)
			}
		case *document.Array:
			for _, item := range x.Items {
				walk(item)
			}
		}
	}

	walk(root)

	return keys
}

// firstUnknown returns the first segment name that no object in the tree has.
func firstUnknown(segments []treeSegment, keys []string) string {
	for _, seg := range segments {
		if !slices.Contains(keys, seg.Name) {
			return seg.Name
		}
	}

	return segments[len(segments)-1].Name
}

// notFound builds an ErrFieldNotFound reason naming the closest known name.
func notFound(path, name string, known []string) error {
	if hint, ok := match.Closest(name, known, match.DefaultThreshold); ok {
		return fmt.Errorf("%w: %s (closest match %q)", ErrFieldNotFound, path, hint)
	}

	return fmt.Errorf("%w: %s", ErrFieldNotFound, path)
}
