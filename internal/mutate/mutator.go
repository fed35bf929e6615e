package mutate

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"fixture-generator/internal/common"
	"fixture-generator/internal/document"
	"fixture-generator/internal/format"
)

// Marker prefixes every commented-out value.
const Marker = "commented-"

var (
	// ErrFieldNotFound means the path has no node in this document.
	ErrFieldNotFound = errors.New("field not found")
	// ErrMalformedFieldPath means the path does not fit the family's addressing scheme.
	ErrMalformedFieldPath = errors.New("malformed field path")
	// ErrDocumentParse means the document content could not be parsed.
	ErrDocumentParse = errors.New("document parse failure")
	// ErrUnsupportedFormat means no strategy is registered for a family.
	ErrUnsupportedFormat = document.ErrUnsupportedFormat
	// ErrDocumentKind means a strategy was handed a document representation it does not handle.
	ErrDocumentKind = errors.New("unexpected document kind")
)

// Mode selects how a field is marked absent.
type Mode int

const (
	Remove     Mode = iota // delete the field
	CommentOut             // keep the field, visibly marked
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case Remove:
		return "remove"
	case CommentOut:
		return "comment"
	default:
		return common.UnknownStr
	}
}

// ParseMode parses a configuration value: "remove" or "comment".
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "remove", "delete":
		return Remove, true
	case "comment", "comment-out", "commentout", "comment_out":
		return CommentOut, true
	default:
		return Remove, false
	}
}

// Outcome is the result of one mutation.
type Outcome struct {
	// Document is the document passed to Mutate.
	Document document.Document
	// Changed reports whether at least one node was mutated.
	Changed bool
	// Count is the number of nodes mutated.
	Count int
	// Reason explains an unchanged outcome. It wraps ErrFieldNotFound,
	// ErrMalformedFieldPath or ErrDocumentParse, and is nil when Changed.
	Reason error
}

func unchanged(doc document.Document, reason error) Outcome {
	return Outcome{Document: doc, Reason: reason}
}

func changed(doc document.Document, count int) Outcome {
	return Outcome{Document: doc, Changed: true, Count: count}
}

// Strategy locates a field in one document family and mutates it.
type Strategy interface {
	// Mutate applies mode to the field at fieldPath. The error is reserved
	// for documents of the wrong representation.
	Mutate(doc document.Document, fieldPath string, mode Mode) (Outcome, error)
}

// Registry maps document families to strategies.
type Registry struct {
	strategies map[format.Tag]Strategy
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{strategies: make(map[format.Tag]Strategy)}
}

// DefaultRegistry registers the built-in strategies for every family.
func DefaultRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}

	tree := NewTree(logger)

	r := NewRegistry()
	r.Register(format.JSON, tree)
	r.Register(format.YAML, tree)
	r.Register(format.XML, NewXML(logger))
	r.Register(format.EDIX12, NewX12(logger))
	r.Register(format.EDIFACT, NewEDIFACT(logger))
	r.Register(format.IDOC, NewIDOC(logger))

	return r
}

// Register binds a strategy to a family, replacing any previous binding.
func (r *Registry) Register(tag format.Tag, s Strategy) {
	r.strategies[tag] = s
}

// Lookup returns the strategy for a family.
func (r *Registry) Lookup(tag format.Tag) (Strategy, error) {
	s, ok := r.strategies[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, tag)
	}

	return s, nil
}

func kindError(want string, doc document.Document) error {
	return fmt.Errorf("%w: want %s, got %T", ErrDocumentKind, want, doc)
}
