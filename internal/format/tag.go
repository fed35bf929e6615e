package format

import "strings"

//go:generate go tool stringer -type=Tag -linecomment -output=tag_string.go

// Tag is the structural family of a document.
type Tag int

const (
	Unknown Tag = iota // UNKNOWN
	JSON               // JSON
	XML                // XML
	EDIX12             // EDI-X12
	EDIFACT            // EDIFACT
	IDOC               // IDOC
	YAML               // YAML
)

// ParseTag parses a tag name as written in configuration files.
// Matching is case-insensitive and accepts common aliases ("X12", "YML").
func ParseTag(s string) (Tag, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "JSON":
		return JSON, true
	case "XML":
		return XML, true
	case "EDI-X12", "X12", "EDI":
		return EDIX12, true
	case "EDIFACT":
		return EDIFACT, true
	case "IDOC":
		return IDOC, true
	case "YAML", "YML":
		return YAML, true
	default:
		return Unknown, false
	}
}

// IsTree reports whether documents of this family are trees of maps and sequences.
func (t Tag) IsTree() bool {
	return t == JSON || t == YAML
}

// IsSegmented reports whether documents of this family are sequences of segment lines.
func (t Tag) IsSegmented() bool {
	return t == EDIX12 || t == EDIFACT || t == IDOC
}

// Extension returns the conventional file extension for the family.
func (t Tag) Extension() string {
	switch t {
	case JSON:
		return "json"
	case XML:
		return "xml"
	case EDIX12:
		return "edi"
	case YAML:
		return "yaml"
	case EDIFACT, IDOC:
		return "txt"
	default:
		return ""
	}
}
