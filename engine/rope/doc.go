// Package rope implements an immutable B+ tree rope over character
// (rune) offsets.
//
// All positions in the public API are character indices, not bytes.
// Each subtree carries a summary of its character count, byte count,
// and newline count, so random-position edits and line-indexed queries
// both run in O(log n) node visits. Operations return new Rope values;
// an existing rope is never modified, which makes snapshots free.
package rope
