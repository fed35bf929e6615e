package mutate

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"fixture-generator/internal/document"
)

// XML mutates XML documents by tag name.
//
// The last "/"-separated component of the path is the tag. A prefixed tag
// ("ns:item") is compared with the element's full tag, a bare tag with its
// local name. Every matching element below the root is mutated; elements
// nested inside a match are not visited.
type XML struct {
	logger *zap.Logger
}

// NewXML creates the XML strategy.
func NewXML(logger *zap.Logger) *XML {
	return &XML{logger: logger}
}

func (s *XML) Mutate(doc document.Document, fieldPath string, mode Mode) (Outcome, error) {
	text, ok := doc.(*document.Text)
	if !ok {
		return Outcome{}, kindError("text document", doc)
	}

	tag := xmlTag(fieldPath)
	if tag == "" {
		return unchanged(doc, fmt.Errorf("%w: empty tag in %q", ErrMalformedFieldPath, fieldPath)), nil
	}

	tree := etree.NewDocument()
	tree.ReadSettings.ValidateInput = true

	content, err := text.Encode()
	if err != nil {
		return Outcome{}, err
	}

	if err := tree.ReadFromBytes(content); err != nil {
		s.logger.Debug("xml parse failed", zap.String("path", fieldPath), zap.Error(err))

		return unchanged(doc, fmt.Errorf("%w: %w", ErrDocumentParse, err)), nil
	}

	root := tree.Root()
	if root == nil {
		return unchanged(doc, fmt.Errorf("%w: no root element", ErrDocumentParse)), nil
	}

	matches := findElements(root, tag)
	if len(matches) == 0 {
		return unchanged(doc, notFound("<"+tag+">", tag, elementTags(root))), nil
	}

	for _, el := range matches {
		switch mode {
		case Remove:
			removeElement(el)
		case CommentOut:
			commentElement(el)
		}
	}

	out, err := tree.WriteToBytes()
	if err != nil {
		return Outcome{}, fmt.Errorf("writing xml: %w", err)
	}

	text.SetContent(out)

	return changed(doc, len(matches)), nil
}

func xmlTag(fieldPath string) string {
	p := strings.TrimSpace(fieldPath)
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		p = p[i+1:]
	}

	return strings.TrimSpace(p)
}

// findElements returns the outermost descendants of root matching tag, in document order.
func findElements(root *etree.Element, tag string) []*etree.Element {
	var out []*etree.Element

	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		for _, c := range el.ChildElements() {
			if matchesTag(c, tag) {
				out = append(out, c)

				continue
			}

			walk(c)
		}
	}

	walk(root)

	return out
}

// elementTags returns the distinct tags below root in document order.
func elementTags(root *etree.Element) []string {
	var tags []string

	seen := make(map[string]struct{})

	for _, el := range root.FindElements(".//*") {
		if _, ok := seen[el.Tag]; !ok {
			seen[el.Tag] = struct{}{}
			tags = append(tags, el.Tag)
		}
	}

	return tags
}

func matchesTag(el *etree.Element, tag string) bool {
	if strings.Contains(tag, ":") {
		return el.FullTag() == tag
	}

	return el.Tag == tag
}

func removeElement(el *etree.Element) {
	parent := el.Parent()
	idx := el.Index()

	parent.RemoveChildAt(idx)

	// Drop the indentation that preceded the element.
	if idx > 0 && idx <= len(parent.Child) {
		if cd, ok := parent.Child[idx-1].(*etree.CharData); ok && cd.IsWhitespace() {
			parent.RemoveChildAt(idx - 1)
		}
	}
}

func commentElement(el *etree.Element) {
	parent := el.Parent()
	idx := el.Index()

	comment := etree.NewComment(commentText(el.FullTag(), el.Text()))

	parent.RemoveChildAt(idx)
	parent.InsertChildAt(idx, comment)
}

// commentText renders " commented-<tag>: <text> ". XML comments may not
// contain "--" or end with "-".
func commentText(tag, text string) string {
	body := Marker + tag + ": " + text
	for strings.Contains(body, "--") {
		body = strings.ReplaceAll(body, "--", "- -")
	}

	return " " + body + " "
}
