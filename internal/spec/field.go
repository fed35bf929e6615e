package spec

import (
	"strings"
)

// Attribute names with a meaning to fixture generation.
const (
	AttrSourceOccurs  = "Source Occurs"
	AttrOutputPath    = "Output Path"
	AttrOutputElement = "Output Element"
	// AttrSourcePath is the structure-file key carrying FieldSpec.SourcePath.
	AttrSourcePath = "source_path"
)

// OccurrenceSuffix joins a repeated element name and its 1-based repeat
// number: "ref", "ref_occurrence_2", "ref_occurrence_3".
const OccurrenceSuffix = "_occurrence_"

// FieldSpec is one field of a specification.
type FieldSpec struct {
	// ElementName is the disambiguated element name, e.g. "sku" or "sku_occurrence_2".
	ElementName string
	// Hierarchy is the path of parent elements, outermost first.
	Hierarchy []string
	// Occurrence is parsed from the "Source Occurs" attribute.
	Occurrence OccurrenceClass
	// OutputPath and OutputElement locate the field in the target document.
	OutputPath    string
	OutputElement string
	// SourcePath is the path assembled from the hierarchy columns, for traceability.
	SourcePath string
	// Attributes maps attribute column headers to cleaned values.
	Attributes map[string]string
}

// NewFieldSpec builds a field and derives its occurrence class and output
// location from the attributes.
func NewFieldSpec(hierarchy []string, elementName, sourcePath string, attrs map[string]string) *FieldSpec {
	if attrs == nil {
		attrs = map[string]string{}
	}

	return &FieldSpec{
		ElementName:   elementName,
		Hierarchy:     append([]string(nil), hierarchy...),
		Occurrence:    ParseOccurrence(lookupAttr(attrs, AttrSourceOccurs)),
		OutputPath:    lookupAttr(attrs, AttrOutputPath),
		OutputElement: lookupAttr(attrs, AttrOutputElement),
		SourcePath:    sourcePath,
		Attributes:    attrs,
	}
}

// Key returns the unique key of the field: its hierarchy and element name
// joined with "/".
func (f *FieldSpec) Key() string {
	if len(f.Hierarchy) == 0 {
		return f.ElementName
	}

	return strings.Join(f.Hierarchy, "/") + "/" + f.ElementName
}

// BaseName returns the element name without its repeat suffix.
func (f *FieldSpec) BaseName() string {
	i := strings.LastIndex(f.ElementName, OccurrenceSuffix)
	if i <= 0 {
		return f.ElementName
	}

	n := f.ElementName[i+len(OccurrenceSuffix):]
	if n == "" || strings.Trim(n, "0123456789") != "" {
		return f.ElementName
	}

	return f.ElementName[:i]
}

// lookupAttr finds an attribute by exact header, then by a header starting
// with the name (case-insensitive), so "Source Occurs (min...max)" matches.
func lookupAttr(attrs map[string]string, name string) string {
	if v, ok := attrs[name]; ok {
		return v
	}

	want := strings.ToLower(name)

	var (
		best    string
		bestKey string
	)

	for k, v := range attrs {
		lk := strings.ToLower(strings.TrimSpace(k))
		if !strings.HasPrefix(lk, want) {
			continue
		}

		if bestKey == "" || k < bestKey {
			best, bestKey = v, k
		}
	}

	return best
}
