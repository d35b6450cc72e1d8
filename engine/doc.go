// Package engine provides the edit session: the orchestrating owner of
// one text buffer, one cursor/selection state, and one undo history.
//
// A Session composes the subpackages into the user-facing editing
// surface: movement delegates to engine/cursor, content changes mutate
// the engine/buffer directly, and every edit is recorded through
// engine/history so it can be undone. A Registry manages independent
// sessions keyed by document ID.
//
// Sessions are single-caller and hold no locks.
package engine
