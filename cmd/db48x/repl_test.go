package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camillew/db48x-core/rpl"
)

func TestPrintStackDeepestFirst(t *testing.T) {
	rt := rpl.NewRuntime(make([]byte, 4096))
	obj, err := rt.Parse("1 2 3")
	require.NoError(t, err)
	require.NoError(t, rt.Execute(obj))

	var buf bytes.Buffer
	printStack(&buf, rt)
	assert.Equal(t, "3: 1\r\n2: 2\r\n1: 3\r\n", buf.String())
}

func TestRunLineClearsErrorAfterFailure(t *testing.T) {
	rt := rpl.NewRuntime(make([]byte, 4096))
	var interrupted int32
	var buf bytes.Buffer

	runLine(rt, &buf, &interrupted, "1 0 /")
	assert.Contains(t, buf.String(), "division by zero")
	assert.Nil(t, rt.Error())
}

func TestEchoControlKnownAndUnknown(t *testing.T) {
	var buf bytes.Buffer
	echoControl(&buf, 0x03)
	assert.Equal(t, "^C", buf.String())

	buf.Reset()
	echoControl(&buf, 'a')
	assert.Empty(t, buf.String())
}
