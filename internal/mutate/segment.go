package mutate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"fixture-generator/internal/document"
)

// delimiters of a segment-delimited interchange. release is 0 when the
// syntax has no release (escape) character.
type delimiters struct {
	element   byte
	component byte
	segment   byte
	release   byte
}

var (
	x12Defaults     = delimiters{element: '*', component: ':', segment: '~'}
	edifactDefaults = delimiters{element: '+', component: ':', segment: '\'', release: '?'}
)

// Segment mutates EDI-X12 and EDIFACT interchanges.
//
// A field path is a segment id followed by an element number and, where
// components are addressable, a component number: "ISA06", "ISA01.1",
// "N40501" (N4, element 05, component 01). Numbers are 1-based. Every
// segment whose id prefixes the path is mutated.
type Segment struct {
	name       string
	components bool
	discover   func(content string) (delimiters, int)
	logger     *zap.Logger
}

// NewX12 creates the EDI-X12 strategy. Delimiters are read from the ISA
// header when it is well formed.
func NewX12(logger *zap.Logger) *Segment {
	return &Segment{name: "EDI-X12", components: true, discover: discoverX12, logger: logger}
}

// NewEDIFACT creates the EDIFACT strategy. Delimiters are read from the UNA
// service string advice when present. Only element numbers are addressable.
func NewEDIFACT(logger *zap.Logger) *Segment {
	return &Segment{name: "EDIFACT", discover: discoverEDIFACT, logger: logger}
}

func (s *Segment) Mutate(doc document.Document, fieldPath string, mode Mode) (Outcome, error) {
	text, ok := doc.(*document.Text)
	if !ok {
		return Outcome{}, kindError("text document", doc)
	}

	path := strings.TrimSpace(fieldPath)
	if path == "" {
		return unchanged(doc, fmt.Errorf("%w: empty path", ErrMalformedFieldPath)), nil
	}

	content := text.String()
	delims, headLen := s.discover(content)
	head, body := content[:headLen], content[headLen:]

	segments := splitEscaped(body, delims.segment, delims.release)

	var (
		count     int
		parsed    bool
		lastError error
	)

	for i, raw := range segments {
		seg := strings.TrimLeft(raw, " \t\r\n")
		lead := raw[:len(raw)-len(seg)]

		elements := splitEscaped(seg, delims.element, delims.release)

		id := elements[0]

		rest, ok := strings.CutPrefix(path, id)
		if id == "" || !ok {
			continue
		}

		d, err := parseDesignator(rest, s.components)
		if err != nil {
			lastError = err

			continue
		}

		parsed = true

		if !applyDesignator(elements, d, delims, mode) {
			continue
		}

		segments[i] = lead + strings.Join(elements, string(delims.element))
		count++
	}

	if count == 0 {
		if !parsed && lastError != nil {
			s.logger.Debug("malformed segment path",
				zap.String("format", s.name), zap.String("path", path), zap.Error(lastError))

			return unchanged(doc, fmt.Errorf("%w: %q: %w", ErrMalformedFieldPath, path, lastError)), nil
		}

		return unchanged(doc, fmt.Errorf("%w: %s", ErrFieldNotFound, path)), nil
	}

	text.SetContent([]byte(head + strings.Join(segments, string(delims.segment))))

	return changed(doc, count), nil
}

// designator addresses an element and optionally a component, both 1-based.
type designator struct {
	element   int
	component int
}

// parseDesignator parses the part of a path after the segment id: a
// two-digit element number, optionally preceded by "." and optionally
// followed by ".<component>" or, with components, two more digits:
// "06", ".06", "01.1", "0501". Any other length is rejected, so a path
// splits into exactly one segment id and designator: "N101" addresses
// N1 element 01 and never N10.
func parseDesignator(rest string, components bool) (designator, error) {
	rest = strings.TrimPrefix(rest, ".")

	if el, comp, ok := strings.Cut(rest, "."); ok {
		if !components {
			return designator{}, fmt.Errorf("component %q not addressable", comp)
		}

		if len(el) != 2 || len(comp) > 2 {
			return designator{}, fmt.Errorf("designator %q is not <NN>.<N>", rest)
		}

		e, err := positive(el)
		if err != nil {
			return designator{}, err
		}

		c, err := positive(comp)
		if err != nil {
			return designator{}, err
		}

		return designator{element: e, component: c}, nil
	}

	switch {
	case len(rest) == 2:
		e, err := positive(rest)
		if err != nil {
			return designator{}, err
		}

		return designator{element: e}, nil
	case components && len(rest) == 4:
		e, err := positive(rest[:2])
		if err != nil {
			return designator{}, err
		}

		c, err := positive(rest[2:])
		if err != nil {
			return designator{}, err
		}

		return designator{element: e, component: c}, nil
	default:
		return designator{}, fmt.Errorf("designator %q is not two digits", rest)
	}
}

func positive(s string) (int, error) {
	if s == "" {
		return 0, errors.New("missing number")
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("non-numeric %q", s)
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}

	if n < 1 {
		return 0, fmt.Errorf("number %q out of range", s)
	}

	return n, nil
}

// applyDesignator mutates elements in place and reports whether a value changed.
func applyDesignator(elements []string, d designator, delims delimiters, mode Mode) bool {
	if d.element >= len(elements) {
		return false
	}

	target := elements[d.element]

	if d.component == 0 {
		next := mutateValue(target, mode)
		elements[d.element] = next

		return next != target
	}

	comps := splitEscaped(target, delims.component, delims.release)
	if d.component > len(comps) {
		return false
	}

	old := comps[d.component-1]
	comps[d.component-1] = mutateValue(old, mode)
	elements[d.element] = strings.Join(comps, string(delims.component))

	return comps[d.component-1] != old
}

func mutateValue(v string, mode Mode) string {
	if mode == CommentOut {
		return Marker + v
	}

	return ""
}

// splitEscaped splits s at sep, ignoring separators preceded by the release
// character. Release characters stay in the pieces.
func splitEscaped(s string, sep, release byte) []string {
	if release == 0 {
		return strings.Split(s, string(sep))
	}

	var (
		parts []string
		start int
	)

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case release:
			i++
		case sep:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}

	return append(parts, s[start:])
}

// isaLength is the fixed length of an X12 ISA segment including its terminator.
const isaLength = 106

func discoverX12(content string) (delimiters, int) {
	isa := strings.TrimLeft(content, "\ufeff \t\r\n")
	if !strings.HasPrefix(isa, "ISA") || len(isa) < isaLength {
		return x12Defaults, 0
	}

	d := delimiters{element: isa[3], component: isa[104], segment: isa[105]}

	// ISA has sixteen elements; the component separator is ISA16.
	if strings.Count(isa[:isaLength-1], string(d.element)) != 16 || isa[103] != d.element {
		return x12Defaults, 0
	}

	return d, 0
}

// unaLength is the length of the UNA service string advice.
const unaLength = 9

func discoverEDIFACT(content string) (delimiters, int) {
	trimmed := strings.TrimLeft(content, "\ufeff \t\r\n")
	if !strings.HasPrefix(trimmed, "UNA") || len(trimmed) < unaLength {
		return edifactDefaults, 0
	}

	d := delimiters{
		component: trimmed[3],
		element:   trimmed[4],
		release:   trimmed[6],
		segment:   trimmed[8],
	}

	if d.release == ' ' {
		d.release = 0
	}

	return d, len(content) - len(trimmed) + unaLength
}
