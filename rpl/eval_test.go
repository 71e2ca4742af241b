package rpl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camillew/db48x-core/rpl"
)

func evalTop(t *testing.T, program string) string {
	t.Helper()
	rt := rpl.NewRuntime(make([]byte, 1<<16))
	obj, err := rt.Parse(program)
	require.NoError(t, err)
	require.NoError(t, rt.Execute(obj))
	return rt.Render(rt.Top())
}

func TestArithmeticRoundTrip(t *testing.T) {
	cases := []struct{ program, expect string }{
		{"1 2 +", "3"},
		{"5 3 -", "2"},
		{"4 5 *", "20"},
		{"1 3 /", "1/3"},
		{"3 neg", "-3"},
		{"9223372036854775806 1 +", "9223372036854775807"},
		{"9223372036854775807 1 +", "9223372036854775808"}, // overflow promotes to bignum
	}
	for _, c := range cases {
		c := c
		t.Run(c.program, func(t *testing.T) {
			assert.Equal(t, c.expect, evalTop(t, c.program))
		})
	}
}

func TestDivideByZeroFails(t *testing.T) {
	rt := rpl.NewRuntime(make([]byte, 4096))
	obj, err := rt.Parse("1 0 /")
	require.NoError(t, err)
	err = rt.Execute(obj)
	assert.Error(t, err)
}

func TestStackShuffling(t *testing.T) {
	rt := rpl.NewRuntime(make([]byte, 4096))
	obj, err := rt.Parse("1 2 3 rot")
	require.NoError(t, err)
	require.NoError(t, rt.Execute(obj))
	require.Equal(t, 3, rt.Depth())

	top, err := rt.StackAt(0)
	require.NoError(t, err)
	mid, err := rt.StackAt(1)
	require.NoError(t, err)
	bot, err := rt.StackAt(2)
	require.NoError(t, err)
	assert.Equal(t, "1", rt.Render(top))
	assert.Equal(t, "3", rt.Render(mid))
	assert.Equal(t, "2", rt.Render(bot))
}

func TestGlobalStoreRecallPurge(t *testing.T) {
	rt := rpl.NewRuntime(make([]byte, 4096))

	obj, err := rt.Parse("5 x sto")
	require.NoError(t, err)
	require.NoError(t, rt.Execute(obj))
	assert.Equal(t, 0, rt.Depth())

	obj, err = rt.Parse("x rcl 1 +")
	require.NoError(t, err)
	require.NoError(t, rt.Execute(obj))
	assert.Equal(t, "6", rt.Render(rt.Top()))

	obj, err = rt.Parse("x purge")
	require.NoError(t, err)
	require.NoError(t, rt.Execute(obj))

	obj, err = rt.Parse("x rcl")
	require.NoError(t, err)
	assert.Error(t, rt.Execute(obj))
}

func TestListEvaluatesByPushingItself(t *testing.T) {
	rt := rpl.NewRuntime(make([]byte, 4096))
	obj, err := rt.Parse("{ A 1 3 }")
	require.NoError(t, err)
	require.NoError(t, rt.Evaluate(obj))
	assert.Equal(t, 1, rt.Depth())
	assert.Equal(t, "{ A 1 3 }", rt.Render(rt.Top()))
}

func TestProgramLiteralEvaluatesByPushingItself(t *testing.T) {
	rt := rpl.NewRuntime(make([]byte, 4096))
	obj, err := rt.Parse("« 1 + sin »")
	require.NoError(t, err)
	require.NoError(t, rt.Evaluate(obj))
	assert.Equal(t, 1, rt.Depth())
	assert.Equal(t, "« 1 + sin »", rt.Render(rt.Top()))
}

func TestProgramExecuteRunsBodyInOrder(t *testing.T) {
	rt := rpl.NewRuntime(make([]byte, 4096))
	obj, err := rt.Parse("« 1 2 + »")
	require.NoError(t, err)
	require.NoError(t, rt.Execute(obj))
	assert.Equal(t, 1, rt.Depth())
	assert.Equal(t, "3", rt.Render(rt.Top()))
}

func TestBasedIntegerSuffixDisambiguation(t *testing.T) {
	cases := []struct{ literal, expect string }{
		{"#123d", "#123d"}, // decimal suffix, not hex digits "123d"
		{"#ffh", "#ffh"},
		{"#101b", "#101b"},
		{"#17o", "#17o"},
	}
	for _, c := range cases {
		c := c
		t.Run(c.literal, func(t *testing.T) {
			rt := rpl.NewRuntime(make([]byte, 4096))
			obj, err := rt.Parse(c.literal)
			require.NoError(t, err)
			assert.Equal(t, c.expect, rt.Render(obj))
		})
	}
}
