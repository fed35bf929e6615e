// Package diagnostic provides structured warnings and errors collected
// while extracting a specification and generating fixtures.
//
// None of these conditions aborts a run. They are recorded per field so the
// caller can report what was skipped and why:
//   - Missing "Source Occurs" column in the specification table
//   - Field paths with no node in the sample document (sparse data)
//   - Field paths the format strategy cannot parse
//   - Sample documents that fail to parse
//   - Formats with no registered mutation strategy
package diagnostic
