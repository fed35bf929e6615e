package document

import (
	"errors"
	"fmt"
	"os"

	"fixture-generator/internal/format"
)

// ErrUnsupportedFormat is returned for a family without a representation.
var ErrUnsupportedFormat = errors.New("unsupported format")

// DefaultIndent is the indentation width of encoded tree documents.
const DefaultIndent = 2

// Document is a sample document or a mutated copy of one.
type Document interface {
	// Format is the family the document was loaded as.
	Format() format.Tag
	// Clone returns a deep copy sharing no mutable state with the receiver.
	Clone() Document
	// Encode serializes the document.
	Encode() ([]byte, error)
}

// Option configures Load and Parse.
type Option func(*options)

type options struct {
	indent int
}

// WithIndent sets the indentation width used when encoding tree documents.
func WithIndent(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.indent = n
		}
	}
}

// Load reads and parses the document at path as the given family.
func Load(path string, tag format.Tag, opts ...Option) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	doc, err := Parse(data, tag, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document %s: %w", path, err)
	}

	return doc, nil
}

// Parse parses content as the given family.
func Parse(data []byte, tag format.Tag, opts ...Option) (Document, error) {
	o := options{indent: DefaultIndent}
	for _, opt := range opts {
		opt(&o)
	}

	switch tag {
	case format.JSON:
		root, err := decodeJSON(data)
		if err != nil {
			return nil, err
		}

		return &Tree{tag: tag, Root: root, Indent: o.indent}, nil
	case format.YAML:
		root, err := decodeYAML(data)
		if err != nil {
			return nil, err
		}

		return &Tree{tag: tag, Root: root, Indent: o.indent}, nil
	case format.XML, format.EDIX12, format.EDIFACT, format.IDOC:
		return NewText(tag, data), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, tag)
	}
}
