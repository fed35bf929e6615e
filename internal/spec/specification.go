package spec

import (
	"errors"
	"fmt"

	"fixture-generator/internal/format"
)

// ErrDuplicateField is returned when a key is added twice.
var ErrDuplicateField = errors.New("duplicate field")

// Specification is the ordered set of fields of one field-design table.
type Specification struct {
	Format format.Tag

	fields []*FieldSpec
	index  map[string]*FieldSpec
	root   *Node
}

// New creates an empty specification for documents of the given family.
func New(tag format.Tag) *Specification {
	return &Specification{
		Format: tag,
		index:  make(map[string]*FieldSpec),
		root:   &Node{},
	}
}

// Add appends a field. Keys must be unique.
func (s *Specification) Add(f *FieldSpec) error {
	key := f.Key()
	if _, ok := s.index[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateField, key)
	}

	s.index[key] = f
	s.fields = append(s.fields, f)

	n := s.root
	for _, h := range f.Hierarchy {
		n = n.Child(h)
	}

	n.Child(f.ElementName).Field = f

	return nil
}

// Len returns the number of fields.
func (s *Specification) Len() int {
	return len(s.fields)
}

// Fields returns all fields in insertion order.
func (s *Specification) Fields() []*FieldSpec {
	return append([]*FieldSpec(nil), s.fields...)
}

// Get returns the field stored under key.
func (s *Specification) Get(key string) (*FieldSpec, bool) {
	f, ok := s.index[key]

	return f, ok
}

// Hierarchy returns the root of the element tree. The root itself is unnamed.
func (s *Specification) Hierarchy() *Node {
	return s.root
}

// Select returns, in insertion order, the fields whose occurrence class
// belongs to the requirement.
func (s *Specification) Select(r Requirement) []*FieldSpec {
	var out []*FieldSpec

	for _, f := range s.fields {
		if r.Includes(f.Occurrence) {
			out = append(out, f)
		}
	}

	return out
}

// CountByOccurrence tallies fields per occurrence class.
func (s *Specification) CountByOccurrence() map[OccurrenceClass]int {
	counts := make(map[OccurrenceClass]int)
	for _, f := range s.fields {
		counts[f.Occurrence]++
	}

	return counts
}
