package rpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBlockExecutesChildrenWithoutPushingItself exercises IDBlock's
// evaluate = executeContainer wiring: unlike a program, a block has no
// surface syntax (allocBlock is its only constructor), so it can only be
// built and run through the package-internal API.
func TestBlockExecutesChildrenWithoutPushingItself(t *testing.T) {
	rt := NewRuntime(make([]byte, 4096))
	one, err := allocMagnitude(rt, 1, false)
	require.NoError(t, err)
	two, err := allocMagnitude(rt, 2, false)
	require.NoError(t, err)
	add, err := allocCommand(rt, CmdAdd)
	require.NoError(t, err)

	blk, err := allocBlock(rt, []Address{one, two, add})
	require.NoError(t, err)

	require.NoError(t, rt.Evaluate(blk))
	assert.Equal(t, 1, rt.Depth())
	assert.Equal(t, "3", rt.Render(rt.Top()))
}

func TestBlockRendersWithoutDelimiters(t *testing.T) {
	rt := NewRuntime(make([]byte, 4096))
	one, err := allocMagnitude(rt, 1, false)
	require.NoError(t, err)
	blk, err := allocBlock(rt, []Address{one})
	require.NoError(t, err)
	assert.Equal(t, "1", rt.Render(blk))
}

// TestContainerExecutionStopsAtInterrupt drives executeContainer (shared by
// program's execute override and block's evaluate) with an interrupt source
// that trips after a fixed number of polls, one per child about to run, and
// checks that exactly the children evaluated before the trip are reflected
// on the stack and the halt is reported as ErrInterrupted.
func TestContainerExecutionStopsAtInterrupt(t *testing.T) {
	polls := 0
	rt := NewRuntime(make([]byte, 4096), WithInterruptSource(func() bool {
		polls++
		return polls > 2
	}))

	items := make([]Address, 5)
	for i := range items {
		addr, err := allocMagnitude(rt, uint64(10*(i+1)), false)
		require.NoError(t, err)
		items[i] = addr
	}
	prog, err := allocProgram(rt, IDProgram, items)
	require.NoError(t, err)

	err = rt.Execute(prog)
	require.Error(t, err)
	var rerr *RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, ErrInterrupted, rerr.Kind)

	require.Equal(t, 2, rt.Depth())
	top, err := rt.StackAt(0)
	require.NoError(t, err)
	bot, err := rt.StackAt(1)
	require.NoError(t, err)
	assert.Equal(t, "20", rt.Render(top))
	assert.Equal(t, "10", rt.Render(bot))
}
