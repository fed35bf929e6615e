package fixture

import (
	"fmt"
	"regexp"
	"strings"

	"fixture-generator/internal/common"
	"fixture-generator/internal/spec"
)

// Naming selects the fixture file name scheme.
type Naming int

const (
	Indexed Naming = iota // <prefix><element>_<NNN>.<ext>
	Legacy                // <prefix>MissRE-<element>.<ext>
)

// String returns the configuration name of the scheme.
func (n Naming) String() string {
	switch n {
	case Indexed:
		return "indexed"
	case Legacy:
		return "legacy"
	default:
		return common.UnknownStr
	}
}

// ParseNaming parses "indexed" or "legacy".
func ParseNaming(s string) (Naming, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "indexed":
		return Indexed, true
	case "legacy":
		return Legacy, true
	default:
		return Indexed, false
	}
}

var unsafeChars = regexp.MustCompile(`[^\p{L}\p{N}_\-]`)

// SafeName replaces every character that is not a letter, digit, '_' or '-'
// with '_'.
func SafeName(name string) string {
	return unsafeChars.ReplaceAllString(name, "_")
}

// DefaultPrefix returns the indexed-naming prefix used when none is configured.
func DefaultPrefix(r spec.Requirement) string {
	return "MISS-" + strings.ToUpper(r.String()) + "_"
}

// ManifestName returns the manifest file name of a requirement pass.
func ManifestName(r spec.Requirement) string {
	if r == spec.Optional {
		return "_optional_missing_keys.txt"
	}

	return "_modified_keys.txt"
}

// fileName builds the fixture file name for the field at 1-based index.
func (o Options) fileName(r spec.Requirement, element string, index int, ext string) string {
	safe := SafeName(element)

	if o.Naming == Legacy {
		return fmt.Sprintf("%s%s-%s.%s", o.Prefix, r.Tag(), safe, ext)
	}

	prefix := o.Prefix
	if prefix == "" {
		prefix = DefaultPrefix(r)
	}

	return fmt.Sprintf("%s%s_%03d.%s", prefix, safe, index, ext)
}
