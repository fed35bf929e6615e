package document

import (
	"bytes"
	"fmt"

	"fixture-generator/internal/format"
)

// Member is one key/value pair of an Object.
type Member struct {
	Key   string
	Value any
}

// Object is a mapping that keeps its members in document order.
type Object struct {
	Members []Member
}

// Array is a sequence.
type Array struct {
	Items []any
}

// Tree is a JSON or YAML document. Values are *Object, *Array, string,
// json.Number, bool or nil.
type Tree struct {
	tag    format.Tag
	Root   any
	Indent int
}

// NewTree wraps a root value.
func NewTree(tag format.Tag, root any) *Tree {
	return &Tree{tag: tag, Root: root, Indent: DefaultIndent}
}

func (t *Tree) Format() format.Tag { return t.tag }

func (t *Tree) Clone() Document {
	return &Tree{tag: t.tag, Root: CloneValue(t.Root), Indent: t.Indent}
}

func (t *Tree) Encode() ([]byte, error) {
	indent := t.Indent
	if indent <= 0 {
		indent = DefaultIndent
	}

	if t.tag == format.YAML {
		return encodeYAML(t.Root, indent)
	}

	var buf bytes.Buffer
	if err := encodeJSON(&buf, t.Root, indent, 0); err != nil {
		return nil, err
	}

	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

// Index returns the position of key, or -1.
func (o *Object) Index(key string) int {
	for i, m := range o.Members {
		if m.Key == key {
			return i
		}
	}

	return -1
}

// Get returns the value bound to key.
func (o *Object) Get(key string) (any, bool) {
	if i := o.Index(key); i >= 0 {
		return o.Members[i].Value, true
	}

	return nil, false
}

// Set binds key to v, replacing an existing binding in place.
func (o *Object) Set(key string, v any) {
	if i := o.Index(key); i >= 0 {
		o.Members[i].Value = v

		return
	}

	o.Members = append(o.Members, Member{Key: key, Value: v})
}

// Delete removes key and reports whether it was present.
func (o *Object) Delete(key string) bool {
	i := o.Index(key)
	if i < 0 {
		return false
	}

	o.Members = append(o.Members[:i], o.Members[i+1:]...)

	return true
}

// Rename changes the key of a member in place. It reports false when oldKey
// is absent or newKey is already bound to another member.
func (o *Object) Rename(oldKey, newKey string) bool {
	i := o.Index(oldKey)
	if i < 0 {
		return false
	}

	if j := o.Index(newKey); j >= 0 && j != i {
		return false
	}

	o.Members[i].Key = newKey

	return true
}

// Keys returns the member keys in order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.Members))
	for i, m := range o.Members {
		keys[i] = m.Key
	}

	return keys
}

// CloneValue deep-copies a tree value.
func CloneValue(v any) any {
	switch x := v.(type) {
	case *Object:
		members := make([]Member, len(x.Members))
		for i, m := range x.Members {
			members[i] = Member{Key: m.Key, Value: CloneValue(m.Value)}
		}

		return &Object{Members: members}
	case *Array:
		items := make([]any, len(x.Items))
		for i, it := range x.Items {
			items[i] = CloneValue(it)
		}

		return &Array{Items: items}
	default:
		return v
	}
}

// Stringify renders a value for inline display: strings verbatim, anything
// else as compact JSON.
func Stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	var buf bytes.Buffer
	if err := encodeJSON(&buf, v, 0, 0); err != nil {
		return fmt.Sprint(v)
	}

	return buf.String()
}
