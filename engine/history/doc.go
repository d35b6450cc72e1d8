// Package history records reversible edit operations and manages the
// undo/redo stacks for a buffer.
//
// Operations are command records: they carry the text and position
// needed to reverse or reapply an edit, but reversal itself is the
// caller's job. Adjacent compatible operations merge within a short
// time window so rapid typing undoes as one step.
package history
