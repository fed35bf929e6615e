// Package fixture generates negative-test fixtures from a maximal sample.
//
// For a requirement pass (required or optional) the Generator selects the
// matching fields of a specification in order, mutates an independent clone
// of the sample per field and writes one fixture per field that was present.
// A manifest listing the mutated element names, one per line, is written
// after all fields are processed and only when at least one fixture exists.
//
// Fixture naming:
//   - indexed: "<prefix><element>_<NNN>.<ext>", NNN being the field's 1-based
//     position among the selected fields
//   - legacy: "<prefix>MissRE-<element>.<ext>" or "<prefix>MissOE-<element>.<ext>"
package fixture
