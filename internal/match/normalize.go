package match

import (
	"strings"
	"unicode"
)

// Normalize lowercases a name and drops separators after splitting CamelCase.
func Normalize(s string) string {
	return strings.Join(Tokens(s), "")
}

// Tokens splits a name into lowercase tokens at separators and case changes.
//   - "OrderID" -> ["order", "id"]
//   - "ship_to-Name" -> ["ship", "to", "name"]
//   - "XMLParser" -> ["xml", "parser"]
func Tokens(s string) []string {
	if s == "" {
		return nil
	}

	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, strings.ToLower(current.String()))
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()

			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	switch r {
	case '_', '-', ' ', '.', ':':
		return true
	default:
		return false
	}
}

// startsToken reports whether a new token starts at runes[i].
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]

	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	// "orderID" splits before 'I'.
	if !unicode.IsUpper(prev) {
		return true
	}

	// "XMLParser" splits before 'P'.
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
