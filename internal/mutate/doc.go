// Package mutate removes or comments out a single field of a sample document.
//
// One Strategy exists per document family, selected through a Registry:
//   - Tree (JSON, YAML): dotted paths with indexed segments, e.g. "order.items[0].sku"
//   - XML: every element whose tag equals the last path component
//   - Segment (EDI-X12, EDIFACT): "<segment><element>[.<component>]" designators
//   - IDOC: segment-type prefixes, blanking or commenting whole lines
//
// Strategies mutate the document they are given and never fail for a field
// that is absent: Outcome.Changed is false and Outcome.Reason says why. The
// document is left untouched whenever nothing changed, so callers clone the
// sample once per field and discard the copy when nothing happened.
//
// Tree and XML not-found reasons name the closest existing key or tag.
package mutate
