// Package match suggests the closest known name for a name that was not found.
//
// Key functions:
//   - Normalize: folds case and separators so "orderId", "order_id" and "ORDER-ID" compare equal
//   - Distance: rune-wise Levenshtein edit distance
//   - Similarity: normalized score in [0, 1]
//   - Closest: best candidate above a similarity threshold
package match
