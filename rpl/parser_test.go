package rpl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camillew/db48x-core/rpl"
)

func TestParseRenderRoundTrip(t *testing.T) {
	cases := []string{
		"42",
		"-7",
		"1/3",
		"3;4",
		"#1ah",
		"#123d",
		`"hello"`,
		"{ A 1 3 }",
		"« 1 + sin »",
	}
	for _, lit := range cases {
		lit := lit
		t.Run(lit, func(t *testing.T) {
			rt := rpl.NewRuntime(make([]byte, 4096))
			obj, err := rt.Parse(lit)
			require.NoError(t, err)
			assert.Equal(t, lit, rt.Render(obj))
		})
	}
}

func TestParseMultiTokenWrapsInProgram(t *testing.T) {
	rt := rpl.NewRuntime(make([]byte, 4096))
	obj, err := rt.Parse("1 2 3")
	require.NoError(t, err)
	require.NoError(t, rt.Execute(obj))
	assert.Equal(t, 3, rt.Depth())
}

func TestParseSyntaxError(t *testing.T) {
	rt := rpl.NewRuntime(make([]byte, 4096))
	_, err := rt.Parse("@@@")
	assert.Error(t, err)
}

// TestParseManyItemsSurviveCollection exercises the container-parsing
// pinned-item path under allocation pressure: a small arena forces the
// parser's own allocations to trigger collections mid-parse, which would
// corrupt any earlier unprotected item.
func TestParseManyItemsSurviveCollection(t *testing.T) {
	var program string
	for i := 1; i <= 40; i++ {
		if i > 1 {
			program += " "
		}
		program += "1"
	}
	rt := rpl.NewRuntime(make([]byte, 512))
	obj, err := rt.Parse(program)
	require.NoError(t, err)
	require.NoError(t, rt.Execute(obj))
	assert.Equal(t, 40, rt.Depth())
}
