package document

import "fixture-generator/internal/format"

// Text is a document kept as raw content.
type Text struct {
	tag     format.Tag
	content []byte
}

// NewText wraps a copy of content.
func NewText(tag format.Tag, content []byte) *Text {
	return &Text{tag: tag, content: append([]byte(nil), content...)}
}

func (t *Text) Format() format.Tag { return t.tag }

func (t *Text) Clone() Document {
	return NewText(t.tag, t.content)
}

func (t *Text) Encode() ([]byte, error) {
	return append([]byte(nil), t.content...), nil
}

// String returns the content.
func (t *Text) String() string {
	return string(t.content)
}

// SetContent replaces the content with a copy of b.
func (t *Text) SetContent(b []byte) {
	t.content = append([]byte(nil), b...)
}
