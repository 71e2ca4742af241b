package rpl

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpHeapNoopWithoutTrace(t *testing.T) {
	rt := NewRuntime(make([]byte, 4096))
	var buf bytes.Buffer
	rt.DumpHeap(&buf)
	assert.Empty(t, buf.String())
}

func TestDumpHeapWithTraceListsPushedObject(t *testing.T) {
	rt := NewRuntime(make([]byte, 4096), WithTrace(os.Stderr))
	addr, err := allocMagnitude(rt, 7, false)
	require.NoError(t, err)
	require.NoError(t, rt.Push(addr))

	var buf bytes.Buffer
	rt.DumpHeap(&buf)
	out := buf.String()
	assert.Contains(t, out, "stack (depth=1)")
	assert.Contains(t, out, "7")
}
