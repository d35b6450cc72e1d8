// Package cursor provides position and selection types and the
// stateless movement functions that compute new cursor positions over a
// buffer.
//
// Movement functions take a position in and return a position out; they
// never mutate the buffer and keep no state of their own. Vertical
// movement threads a preferred (sticky) column through its return value
// so the caller can restore the intended column when the cursor crosses
// short lines.
package cursor
