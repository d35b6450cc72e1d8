// Package buffer provides the editable text container used by an edit
// session.
//
// A Buffer wraps an immutable rope with editor bookkeeping: line ending
// detection and restoration, a monotonically increasing version counter,
// and the modified/saved baseline used for the "unsaved changes"
// indicator. Text is stored LF-normalized internally so all offset
// arithmetic is uniform; the detected line ending is re-expanded on
// output.
//
// All positions are character (rune) offsets. The API has no fallible
// operations: out-of-range indices are clamped, and queries that can
// find nothing report it with a bool result.
package buffer
