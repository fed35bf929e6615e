package fixture

import (
	"strings"

	"fixture-generator/internal/common"
	"fixture-generator/internal/format"
	"fixture-generator/internal/spec"
)

// DefaultPathPrefixes are stripped from tree output paths.
var DefaultPathPrefixes = []string{"/JSON/", "JSON/"}

// FieldPath composes the path handed to the mutation strategy of a family.
//
//   - tree: the output path without its configured prefix, then "." and the
//     output element; the hierarchy and element name joined with "." when
//     both are empty
//   - XML: the output element, else the element name
//   - EDI-X12, EDIFACT: the output element, else the last "_" part of the
//     element name ("N4_N40501" gives "N40501")
//   - IDOC: the element name, which starts with the segment type
//
// Repeat suffixes ("_occurrence_2") are dropped from element names. The
// source path is never used: it only traces the row the field came from.
func FieldPath(f *spec.FieldSpec, tag format.Tag, prefixes []string) string {
	name := f.BaseName()

	switch tag {
	case format.JSON, format.YAML:
		p := strings.Trim(stripPrefix(f.OutputPath, prefixes), "./")

		switch {
		case f.OutputElement != "" && p != "":
			return p + "." + f.OutputElement
		case f.OutputElement != "":
			return f.OutputElement
		case p != "":
			return p
		}

		return strings.Join(append(append([]string(nil), f.Hierarchy...), name), ".")
	case format.XML:
		return common.FirstNonEmpty(f.OutputElement, name)
	case format.EDIX12, format.EDIFACT:
		return common.FirstNonEmpty(f.OutputElement, lastComponent(name, "_"))
	default:
		return name
	}
}

func stripPrefix(p string, prefixes []string) string {
	p = strings.TrimSpace(p)

	for _, prefix := range prefixes {
		if prefix != "" && strings.HasPrefix(p, prefix) {
			return strings.TrimPrefix(p, prefix)
		}
	}

	return p
}

func lastComponent(p, sep string) string {
	parts := strings.Split(strings.Trim(p, sep), sep)
	last, _ := common.Last(parts)

	return last
}
