// Package document models the maximal sample document a fixture is derived from.
//
// Two representations cover the five families:
//   - Tree: JSON and YAML documents as ordered objects, arrays and scalars,
//     so encoded fixtures keep the member order of the sample
//   - Text: XML, EDI-X12, EDIFACT and IDOC documents as raw content, parsed
//     by the mutation strategy that handles them
//
// Every Document can be cloned into an independent deep copy.
package document
