package format

import (
	"bytes"
	"path/filepath"
	"strings"
)

// sniffLen is how much of a document's head content sniffing looks at. It
// spans a full 106-byte ISA header and the segment after it.
const sniffLen = 256

// Classify returns the format family of a sample document.
//
// Resolution order:
//  1. overrides, keyed by path (exact match, then base name)
//  2. file extension
//  3. content markers: "UNA"/"UNB" prefix (EDIFACT), "ISA"/"GS" segments (EDI-X12),
//     "E1"/"EDI_DC" prefix or "E1EDK"/"E1EDP" segments (IDOC), leading '<' (XML)
//  4. JSON
//
// Empty content with no decisive override or extension is Unknown.
// An override naming an unrecognized tag is Unknown as well.
func Classify(path string, content []byte, overrides map[string]string) Tag {
	if tag, ok := lookupOverride(path, overrides); ok {
		return tag
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON
	case ".yaml", ".yml":
		return YAML
	case ".xml":
		return XML
	case ".edi", ".x12":
		return EDIX12
	case ".edifact", ".edf":
		return EDIFACT
	case ".idoc":
		return IDOC
	}

	return sniff(content)
}

func sniff(content []byte) Tag {
	head := bytes.TrimPrefix(content, []byte("\xef\xbb\xbf"))
	head = bytes.TrimLeft(head, " \t\r\n")

	if len(head) == 0 {
		return Unknown
	}

	if len(head) > sniffLen {
		head = head[:sniffLen]
	}

	s := string(head)

	switch {
	case strings.HasPrefix(s, "UNA"), strings.HasPrefix(s, "UNB"):
		return EDIFACT
	case strings.HasPrefix(s, "ISA"), strings.Contains(s, "\nGS"), strings.Contains(s, "~GS"):
		return EDIX12
	case strings.HasPrefix(s, "E1"), strings.HasPrefix(s, "EDI_DC"),
		strings.Contains(s, "E1EDK"), strings.Contains(s, "E1EDP"):
		return IDOC
	case strings.HasPrefix(s, "<"):
		return XML
	default:
		return JSON
	}
}

func lookupOverride(path string, overrides map[string]string) (Tag, bool) {
	if len(overrides) == 0 || path == "" {
		return Unknown, false
	}

	name, ok := overrides[path]
	if !ok {
		name, ok = overrides[filepath.Base(path)]
	}

	if !ok {
		return Unknown, false
	}

	tag, _ := ParseTag(name)

	return tag, true
}
