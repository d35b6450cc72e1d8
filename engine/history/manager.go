package history

// DefaultMaxHistory bounds the undo stack when no limit is given.
const DefaultMaxHistory = 1000

// Manager holds the undo and redo stacks for one buffer and tracks the
// version last marked as saved.
//
// Manager records operations; it never touches the buffer. Undo and
// Redo hand the operation back for the caller to reverse or reapply.
//
// The version counter is a position on the edit timeline: Push and
// Redo advance it, Undo rewinds it. Undoing back to the version last
// marked saved therefore reports a clean state, and so does redoing
// forward to it.
type Manager struct {
	undo           []Operation
	redo           []Operation
	maxHistory     int
	currentVersion int
	savedVersion   int
}

// NewManager creates a history manager. A maxHistory of zero or less
// uses DefaultMaxHistory.
func NewManager(maxHistory int) *Manager {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &Manager{maxHistory: maxHistory}
}

// Push records an operation. If the top of the undo stack can absorb it
// the two merge into one logical edit; otherwise it becomes a new
// entry. Either way the redo stack is cleared, the version advances,
// and the oldest entry is evicted once the stack exceeds its bound.
func (m *Manager) Push(op Operation) {
	if n := len(m.undo); n > 0 && m.undo[n-1].CanMergeWith(&op) {
		// Merging absorbs the entry the save point referred to; undoing
		// the merged operation can no longer land on the saved content.
		if m.savedVersion == m.currentVersion {
			m.savedVersion = -1
		}
		m.undo[n-1].merge(&op)
	} else {
		m.undo = append(m.undo, op)
		if len(m.undo) > m.maxHistory {
			m.undo = m.undo[1:]
		}
	}
	// A save point left on the discarded redo branch is unreachable now.
	if m.savedVersion > m.currentVersion {
		m.savedVersion = -1
	}
	m.redo = m.redo[:0]
	m.currentVersion++
}

// Undo pops the most recent operation onto the redo stack and returns
// it for the caller to reverse. Returns false when there is nothing to
// undo.
func (m *Manager) Undo() (Operation, bool) {
	n := len(m.undo)
	if n == 0 {
		return Operation{}, false
	}
	op := m.undo[n-1]
	m.undo = m.undo[:n-1]
	m.redo = append(m.redo, op)
	m.currentVersion--
	return op, true
}

// Redo pops the most recently undone operation back onto the undo stack
// and returns it for the caller to reapply. Returns false when there is
// nothing to redo.
func (m *Manager) Redo() (Operation, bool) {
	n := len(m.redo)
	if n == 0 {
		return Operation{}, false
	}
	op := m.redo[n-1]
	m.redo = m.redo[:n-1]
	m.undo = append(m.undo, op)
	m.currentVersion++
	return op, true
}

// CanUndo reports whether the undo stack is non-empty.
func (m *Manager) CanUndo() bool {
	return len(m.undo) > 0
}

// CanRedo reports whether the redo stack is non-empty.
func (m *Manager) CanRedo() bool {
	return len(m.redo) > 0
}

// UndoCount returns the number of undoable entries.
func (m *Manager) UndoCount() int {
	return len(m.undo)
}

// RedoCount returns the number of redoable entries.
func (m *Manager) RedoCount() int {
	return len(m.redo)
}

// MarkSaved records the current version as the saved baseline.
func (m *Manager) MarkSaved() {
	m.savedVersion = m.currentVersion
}

// AtSavedState reports whether the buffer is back at the version last
// marked saved. Version equality, not stack emptiness: undoing to the
// save point and redoing back to it both report clean.
func (m *Manager) AtSavedState() bool {
	return m.currentVersion == m.savedVersion
}

// Version returns the current position on the edit timeline.
func (m *Manager) Version() int {
	return m.currentVersion
}

// Clear drops both stacks and resets the version counters.
func (m *Manager) Clear() {
	m.undo = nil
	m.redo = nil
	m.currentVersion = 0
	m.savedVersion = 0
}
