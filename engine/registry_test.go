package engine

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryOpenGetClose(t *testing.T) {
	r := NewRegistry()

	id, s := r.Open("doc")
	require.NotNil(t, s)
	assert.Equal(t, "doc", s.Content())
	assert.Equal(t, 1, r.Len())

	got, ok := r.Get(id)
	require.True(t, ok)
	assert.Same(t, s, got)

	assert.True(t, r.Close(id))
	assert.Equal(t, 0, r.Len())
	assert.False(t, r.Close(id), "closing twice reports false")

	_, ok = r.Get(id)
	assert.False(t, ok)
}

func TestRegistryUnknownID(t *testing.T) {
	r := NewRegistry()

	_, ok := r.Get(uuid.New())
	assert.False(t, ok)
}

func TestRegistrySessionIsolation(t *testing.T) {
	r := NewRegistry()

	idA, a := r.Open("shared start")
	idB, b := r.Open("shared start")
	require.NotEqual(t, idA, idB)

	a.MoveEnd(false)
	a.InsertText(" edited")

	assert.Equal(t, "shared start edited", a.Content())
	assert.Equal(t, "shared start", b.Content(), "editing one session never touches another")
	assert.True(t, a.IsModified())
	assert.False(t, b.IsModified())

	require.True(t, a.Undo())
	assert.Equal(t, "shared start", a.Content())
	assert.False(t, b.CanUndo())
}

func TestRegistryIDs(t *testing.T) {
	r := NewRegistry()
	want := make(map[uuid.UUID]bool)
	for i := 0; i < 3; i++ {
		id, _ := r.Open("")
		want[id] = true
	}

	ids := r.IDs()
	assert.Len(t, ids, 3)
	for _, id := range ids {
		assert.True(t, want[id])
	}
}
