package extract

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"fixture-generator/internal/common"
	"fixture-generator/internal/diagnostic"
	"fixture-generator/internal/format"
	"fixture-generator/internal/spec"
	"fixture-generator/internal/tabular"
)

// ErrMissingOccurrenceColumn is returned when no header contains the
// "Source Occurs" marker.
var ErrMissingOccurrenceColumn = errors.New("missing occurrence column")

// Extractor builds specifications for one document family.
type Extractor struct {
	tag    format.Tag
	layout layout
	logger *zap.Logger
}

// New creates an extractor for tables describing documents of the given family.
func New(tag format.Tag, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Extractor{
		tag:    tag,
		layout: layoutFor(tag),
		logger: logger.With(zap.Stringer("format", tag)),
	}
}

// Extract builds the specification of a table.
//
// A table without the occurrence column yields an empty specification
// together with an error wrapping ErrMissingOccurrenceColumn. Rows without
// hierarchy values or without attribute values are skipped and reported in
// the diagnostics.
func (e *Extractor) Extract(t tabular.Table) (*spec.Specification, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	s := spec.New(e.tag)

	split := t.OccurrenceColumn()
	if split < 0 {
		diags.AddError(diagnostic.CodeMissingOccurrenceColumn,
			fmt.Sprintf("no header contains %q", tabular.OccurrenceMarker), "", t.Sheet)
		e.logger.Warn("occurrence column not found",
			zap.String("source", t.Source), zap.String("sheet", t.Sheet))

		return s, diags, fmt.Errorf("%w: %s", ErrMissingOccurrenceColumn, t.Source)
	}

	counter := newOccurrenceCounter()

	for i, row := range t.Rows {
		rowRef := fmt.Sprintf("row %d", t.HeaderRow+i+1)

		parts := hierarchyValues(row[:min(split, len(row))])
		if len(parts) == 0 {
			diags.AddInfo(diagnostic.CodeEmptyRow, "no hierarchy values", "", rowRef)

			continue
		}

		hierarchy, name, sourcePath := e.layout.place(parts)

		attrs := attributes(t.Header[split:], row[min(split, len(row)):])
		if len(attrs) == 0 {
			diags.AddWarning(diagnostic.CodeNoAttributes, "row has no attribute values", name, rowRef)
			e.logger.Debug("skipping element without attributes", zap.String("element", name), zap.String("row", rowRef))

			continue
		}

		final := counter.name(hierarchy, name)

		if err := s.Add(spec.NewFieldSpec(hierarchy, final, sourcePath, attrs)); err != nil {
			diags.AddWarning(diagnostic.CodeDuplicateElement, err.Error(), final, rowRef)

			continue
		}

		e.logger.Debug("added element",
			zap.String("element", final),
			zap.Strings("hierarchy", hierarchy),
			zap.String("source_path", sourcePath))
	}

	e.logger.Info("specification extracted",
		zap.String("source", t.Source),
		zap.Int("elements", s.Len()),
		zap.Int("skipped", len(diags.All())))

	return s, diags, nil
}

func hierarchyValues(cells []string) []string {
	var parts []string

	for _, c := range cells {
		if !common.IsBlank(c) {
			parts = append(parts, strings.TrimSpace(c))
		}
	}

	return parts
}

func attributes(headers, cells []string) map[string]string {
	attrs := make(map[string]string)

	for i, h := range headers {
		if h == "" || i >= len(cells) || common.IsBlank(cells[i]) {
			continue
		}

		attrs[h] = strings.ReplaceAll(strings.TrimSpace(cells[i]), "…", "...")
	}

	return attrs
}

// occurrenceCounter numbers repeated element names per parent path.
type occurrenceCounter struct {
	seen map[string]int
}

func newOccurrenceCounter() *occurrenceCounter {
	return &occurrenceCounter{seen: make(map[string]int)}
}

func (c *occurrenceCounter) name(hierarchy []string, name string) string {
	key := name
	if len(hierarchy) > 0 {
		key = strings.Join(hierarchy, "/") + "/" + name
	}

	c.seen[key]++

	if n := c.seen[key]; n > 1 {
		return fmt.Sprintf("%s%s%d", name, spec.OccurrenceSuffix, n)
	}

	return name
}
