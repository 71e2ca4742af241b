package main

import (
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camillew/db48x-core/rpl"
)

func TestRunFilesEvaluatesProgramAndLeavesResultOnStack(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "prog-*.49s")
	require.NoError(t, err)
	_, err = f.WriteString("1 2 +\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	rt := rpl.NewRuntime(make([]byte, 4096))
	var interrupted int32
	err = runFiles(rt, []string{f.Name()}, 0, &interrupted)
	require.NoError(t, err)
	assert.Equal(t, "3", rt.Render(rt.Top()))
}

func TestRunFilesReportsMissingFile(t *testing.T) {
	rt := rpl.NewRuntime(make([]byte, 4096))
	var interrupted int32
	err := runFiles(rt, []string{"/nonexistent/path.49s"}, 0, &interrupted)
	assert.Error(t, err)
}

func TestRunFilesTimeoutSetsInterruptFlag(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "prog-*.49s")
	require.NoError(t, err)
	_, err = f.WriteString("1 2 +\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	rt := rpl.NewRuntime(make([]byte, 4096))
	var interrupted int32
	err = runFiles(rt, []string{f.Name()}, time.Nanosecond, &interrupted)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&interrupted))
}

// TestRunFilesInterruptLeavesPartialStack wires a runtime whose interrupt
// source trips after a fixed number of polls -- one per program child about
// to run -- and checks that runFiles stops exactly there: the children
// evaluated before the trip are on the stack, nothing after is, and the
// error reports ErrInterrupted.
func TestRunFilesInterruptLeavesPartialStack(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "prog-*.49s")
	require.NoError(t, err)
	_, err = f.WriteString("1 2 3 4 5\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	polls := 0
	rt := rpl.NewRuntime(make([]byte, 4096), rpl.WithInterruptSource(func() bool {
		polls++
		return polls > 2
	}))

	var interrupted int32
	err = runFiles(rt, []string{f.Name()}, 0, &interrupted)

	var rerr *rpl.RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, rpl.ErrInterrupted, rerr.Kind)

	require.Equal(t, 2, rt.Depth())
	top, err := rt.StackAt(0)
	require.NoError(t, err)
	bot, err := rt.StackAt(1)
	require.NoError(t, err)
	assert.Equal(t, "2", rt.Render(top))
	assert.Equal(t, "1", rt.Render(bot))
}
