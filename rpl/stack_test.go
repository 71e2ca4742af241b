package rpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushPopDepth(t *testing.T) {
	rt := NewRuntime(make([]byte, 4096))
	assert.Equal(t, 0, rt.Depth())

	a, err := allocMagnitude(rt, 1, false)
	require.NoError(t, err)
	b, err := allocMagnitude(rt, 2, false)
	require.NoError(t, err)

	require.NoError(t, rt.Push(a))
	require.NoError(t, rt.Push(b))
	assert.Equal(t, 2, rt.Depth())
	assert.Equal(t, b, rt.Top())

	at1, err := rt.StackAt(1)
	require.NoError(t, err)
	assert.Equal(t, a, at1)

	popped, err := rt.Pop()
	require.NoError(t, err)
	assert.Equal(t, b, popped)
	assert.Equal(t, 1, rt.Depth())

	_, err = rt.Pop()
	require.NoError(t, err)
	_, err = rt.Pop()
	assert.Error(t, err)
}

func TestPopEmptyStackFails(t *testing.T) {
	rt := NewRuntime(make([]byte, 4096))
	_, err := rt.Pop()
	assert.Error(t, err)
}
