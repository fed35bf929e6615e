// Package spec holds the field specification consumed by fixture generation.
//
// It provides:
//   - OccurrenceClass: the cardinality class parsed from a "Source Occurs" value
//   - Requirement: the Required and Optional fixture passes and the classes they select
//   - FieldSpec: one field with its output location, source path and attributes
//   - Specification: the ordered, uniquely keyed set of fields plus their hierarchy
//   - Load and Save: the "<FORMAT>_structure.json" file written by extraction
//
// A Specification is built once, by extraction or Load, and only read afterwards.
package spec
