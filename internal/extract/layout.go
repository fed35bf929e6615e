package extract

import (
	"strings"

	"fixture-generator/internal/format"
)

// layout maps the non-blank hierarchy values of a row to a field position.
type layout interface {
	place(parts []string) (hierarchy []string, name, sourcePath string)
}

type treeLayout struct{}

func (treeLayout) place(parts []string) ([]string, string, string) {
	last := len(parts) - 1

	return parts[:last], parts[last], "/" + strings.Join(parts, "/")
}

type segmentLayout struct {
	separator string
}

func (l segmentLayout) place(parts []string) ([]string, string, string) {
	segmentID := parts[0]

	name := segmentID
	if len(parts) > 1 {
		name = strings.Join(parts, "_")
	}

	return []string{segmentID}, name, strings.Join(parts, l.separator)
}

func layoutFor(tag format.Tag) layout {
	switch tag {
	case format.EDIX12, format.EDIFACT:
		return segmentLayout{separator: "*"}
	case format.IDOC:
		return segmentLayout{separator: "/"}
	default:
		return treeLayout{}
	}
}
