package rpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaAllocateAdvancesTemporaries(t *testing.T) {
	a := NewArena(make([]byte, 4096))
	before := a.temporaries

	addr, payload := a.Allocate(newGC(&Runtime{arena: a}), 4, IDText)
	require.NotEqual(t, NullAddr, addr)
	assert.Equal(t, before, addr)
	assert.Len(t, payload, 4)
	assert.Equal(t, before+Address(sizeTypeID(IDText)+4), a.temporaries)
}

func TestArenaAvailableRespectsRedZone(t *testing.T) {
	// Offset 0 is reserved for NullAddr, so only one of the two spare bytes
	// is allocatable.
	a := NewArena(make([]byte, redZone+2))
	assert.Equal(t, 1, a.Available())
}

func TestArenaObjectSizeRoundTripsIntegers(t *testing.T) {
	rt := NewRuntime(make([]byte, 4096))
	addr, err := allocMagnitude(rt, 42, false)
	require.NoError(t, err)
	assert.Equal(t, "42", rt.Render(addr))
	assert.Equal(t, IDInteger, rt.arena.TypeOf(addr))
	assert.Equal(t, 2, rt.arena.ObjectSize(addr)) // one tag byte, one LEB128 byte for 42
}
