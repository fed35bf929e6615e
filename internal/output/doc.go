// Package output persists generated files: fixtures, manifests and
// structure files. Every file is written to a temporary sibling and renamed
// into place, so readers never observe a partially written file.
package output
