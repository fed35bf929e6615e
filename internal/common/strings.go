package common

import (
	"path/filepath"
	"strings"
)

// UnknownStr is the String() value of enum members outside their declared range.
const UnknownStr = "unknown"

// IsBlank reports whether a cell value carries no data.
// Spreadsheet exports spell missing values as "", "nan" or "null".
func IsBlank(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "nan", "null":
		return true
	default:
		return false
	}
}

// Ext returns the extension of path without the leading dot.
// Returns empty string if path has no extension.
func Ext(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}
