package rpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCollectReclaimsUnreachableObjects checks that an object with no
// stack slot or safe pointer referencing it is recycled, while one still on
// the data stack survives and is compacted down to close the gap.
func TestCollectReclaimsUnreachableObjects(t *testing.T) {
	rt := NewRuntime(make([]byte, 4096))

	dead, err := allocMagnitude(rt, 1, false)
	require.NoError(t, err)
	live, err := allocMagnitude(rt, 2, false)
	require.NoError(t, err)
	require.NoError(t, rt.Push(live))

	before := rt.arena.temporaries
	recycled := rt.gc.Collect()

	assert.Greater(t, recycled, 0)
	assert.Less(t, rt.arena.temporaries, before)
	assert.Equal(t, "2", rt.Render(rt.Top()))
	assert.NotEqual(t, dead, NullAddr) // sanity: dead was allocated at all
}

// TestSafePointerSurvivesCollection checks that a registered safe pointer
// is rewritten to the post-move address rather than left dangling.
func TestSafePointerSurvivesCollection(t *testing.T) {
	rt := NewRuntime(make([]byte, 4096))

	_, err := allocMagnitude(rt, 1, false) // unreachable filler, ahead of the protected object
	require.NoError(t, err)
	protected, err := allocMagnitude(rt, 99, false)
	require.NoError(t, err)

	sp := rt.NewSafePointer(protected)
	defer sp.Release()

	rt.gc.Collect()

	moved := sp.Get()
	assert.NotEqual(t, protected, moved)
	assert.Equal(t, "99", rt.Render(moved))
}
