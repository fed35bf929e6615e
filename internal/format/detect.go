package format

import "strings"

// detectColumns is how many leading columns DetectTable inspects.
const detectColumns = 10

var (
	x12Designators     = []string{"ISA01", "GS01", "ST01"}
	edifactDesignators = []string{"UNB01", "UNH01", "UNT01"}
	idocDesignators    = []string{"E1EDK01", "E1EDP01"}
)

// DetectTable classifies a specification table by the segment designators
// found in its first ten columns. Tables with none of them describe tree
// documents and are reported as JSON.
func DetectTable(path string, rows [][]string, overrides map[string]string) Tag {
	if tag, ok := lookupOverride(path, overrides); ok {
		return tag
	}

	seen := make(map[string]struct{})

	for _, row := range rows {
		for i, cell := range row {
			if i >= detectColumns {
				break
			}

			if v := strings.TrimSpace(cell); v != "" {
				seen[v] = struct{}{}
			}
		}
	}

	switch {
	case containsAny(seen, x12Designators):
		return EDIX12
	case containsAny(seen, edifactDesignators):
		return EDIFACT
	case containsAny(seen, idocDesignators):
		return IDOC
	default:
		return JSON
	}
}

func containsAny(set map[string]struct{}, values []string) bool {
	for _, v := range values {
		if _, ok := set[v]; ok {
			return true
		}
	}

	return false
}
