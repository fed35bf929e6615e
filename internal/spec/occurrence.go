package spec

import (
	"regexp"
	"strings"

	"fixture-generator/internal/common"
)

// OccurrenceClass is the cardinality constraint of a field in the source system.
type OccurrenceClass int

const (
	ExactlyOne OccurrenceClass = iota // 1...1
	OneOrMore                         // 1...*
	ZeroOrOne                         // 0...1
	ZeroOrMore                        // 0...*
	Other                             // anything else
)

// String returns the canonical cardinality notation.
func (c OccurrenceClass) String() string {
	switch c {
	case ExactlyOne:
		return "1...1"
	case OneOrMore:
		return "1...*"
	case ZeroOrOne:
		return "0...1"
	case ZeroOrMore:
		return "0...*"
	case Other:
		return "other"
	default:
		return common.UnknownStr
	}
}

var dotRun = regexp.MustCompile(`\.{2,}`)

// ParseOccurrence classifies a cardinality string such as "1...1" or "0..n".
// Whitespace is ignored, any run of two or more dots (or the ellipsis
// character) separates the bounds, and "n"/"N" mean unbounded.
func ParseOccurrence(raw string) OccurrenceClass {
	s := strings.Join(strings.Fields(raw), "")
	s = strings.ReplaceAll(s, "…", "...")
	s = dotRun.ReplaceAllString(s, "...")

	lower, upper, ok := strings.Cut(s, "...")
	if !ok {
		return Other
	}

	if upper == "n" || upper == "N" {
		upper = "*"
	}

	switch lower + "..." + upper {
	case "1...1":
		return ExactlyOne
	case "1...*":
		return OneOrMore
	case "0...1":
		return ZeroOrOne
	case "0...*":
		return ZeroOrMore
	default:
		return Other
	}
}

// Requirement is a fixture generation pass.
type Requirement int

const (
	Required Requirement = iota // ExactlyOne and OneOrMore fields
	Optional                    // ZeroOrOne and ZeroOrMore fields
)

// String returns the requirement name used in configuration and logs.
func (r Requirement) String() string {
	switch r {
	case Required:
		return "required"
	case Optional:
		return "optional"
	default:
		return common.UnknownStr
	}
}

// Tag returns the short marker used in legacy fixture names.
func (r Requirement) Tag() string {
	switch r {
	case Required:
		return "MissRE"
	case Optional:
		return "MissOE"
	default:
		return common.UnknownStr
	}
}

// Includes reports whether fields of class c belong to this pass.
func (r Requirement) Includes(c OccurrenceClass) bool {
	switch r {
	case Required:
		return c == ExactlyOne || c == OneOrMore
	case Optional:
		return c == ZeroOrOne || c == ZeroOrMore
	default:
		return false
	}
}

// ParseRequirement parses "required" or "optional" (case-insensitive).
func ParseRequirement(s string) (Requirement, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "required", "re":
		return Required, true
	case "optional", "oe":
		return Optional, true
	default:
		return Required, false
	}
}
