package engine

import "github.com/google/uuid"

// Registry manages the open sessions of a host application, one per
// document, keyed by a generated document ID. Sessions never share
// state, so closing or editing one cannot affect another.
//
// Like the sessions it holds, a Registry is single-caller.
type Registry struct {
	sessions map[uuid.UUID]*Session
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[uuid.UUID]*Session)}
}

// Open creates a session for a new document with the given content and
// returns its ID.
func (r *Registry) Open(content string, opts ...Option) (uuid.UUID, *Session) {
	id := uuid.New()
	s := NewSession(append([]Option{WithContent(content)}, opts...)...)
	r.sessions[id] = s
	return id, s
}

// Get returns the session for a document ID.
func (r *Registry) Get(id uuid.UUID) (*Session, bool) {
	s, ok := r.sessions[id]
	return s, ok
}

// Close removes a session. Reports false if the ID is unknown.
func (r *Registry) Close(id uuid.UUID) bool {
	if _, ok := r.sessions[id]; !ok {
		return false
	}
	delete(r.sessions, id)
	return true
}

// IDs returns the IDs of all open documents, in no particular order.
func (r *Registry) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	return ids
}

// Len returns the number of open sessions.
func (r *Registry) Len() int {
	return len(r.sessions)
}
