// Package extract turns a located field-design table into a spec.Specification.
//
// Columns left of the first "Source Occurs" header are hierarchy columns;
// their non-blank values, left to right, form the path to an element. The
// remaining columns are attributes. The layout depends on the family the
// table describes:
//   - tree (JSON, YAML, XML): the last value is the element name, the rest its parents,
//     and the source path is "/" followed by all values joined with "/"
//   - segment (EDI-X12, EDIFACT, IDOC): the first value is the segment id and the
//     only parent, the element name joins all values with "_", and the source path
//     joins them with "*" (EDI-X12, EDIFACT) or "/" (IDOC)
//
// Repeated element names under the same parent are suffixed with
// "_occurrence_N" in first-seen order.
package extract
