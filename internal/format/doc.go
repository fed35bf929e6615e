// Package format identifies the structural family of sample documents and
// specification tables.
//
// Key capabilities:
//   - Tag: the format families (JSON, XML, EDI-X12, EDIFACT, IDOC, YAML)
//   - Classify: sample document classification by override, extension and content
//   - DetectTable: specification table classification by well-known segment designators
//
// Both classifiers consult an explicit override table first, keyed by the
// input path as written in the configuration.
package format
