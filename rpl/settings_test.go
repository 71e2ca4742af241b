package rpl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camillew/db48x-core/rpl"
)

func TestCommandFormatSetting(t *testing.T) {
	cases := []struct {
		fmt    rpl.CommandFormat
		expect string
	}{
		{rpl.CommandLongForm, "dup"},
		{rpl.CommandUppercase, "DUP"},
		{rpl.CommandCapitalized, "Dup"},
		{rpl.CommandLowercase, "dup"},
	}
	for _, c := range cases {
		c := c
		t.Run(c.expect, func(t *testing.T) {
			s := rpl.DefaultSettings()
			s.CommandFmt = c.fmt
			rt := rpl.NewRuntime(make([]byte, 4096), rpl.WithSettings(s))
			obj, err := rt.Parse("dup")
			require.NoError(t, err)
			assert.Equal(t, c.expect, rt.Render(obj))
		})
	}
}

func TestBasedIntegerDefaultBaseSetting(t *testing.T) {
	s := rpl.DefaultSettings()
	s.Base = 10
	rt := rpl.NewRuntime(make([]byte, 4096), rpl.WithSettings(s))
	obj, err := rt.Parse("#123")
	require.NoError(t, err)
	assert.Equal(t, "#123d", rt.Render(obj))
}

func TestDecimalDisplayModes(t *testing.T) {
	cases := []struct {
		name   string
		mode   rpl.DisplayMode
		disp   uint16
		input  string
		expect string
	}{
		{"fix rounds to displayed fractional digits", rpl.DisplayFix, 2, "12.345", "12.35"},
		{"fix pads short fractions with zeros", rpl.DisplayFix, 4, "12.5", "12.5000"},
		{"sci always uses one leading digit", rpl.DisplaySci, 2, "123.0", "1.23⁳2"},
		{"eng picks a multiple-of-three exponent", rpl.DisplayEng, 2, "12345.0", "12.35⁳3"},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			s := rpl.DefaultSettings()
			s.DisplayMode = c.mode
			s.Displayed = c.disp
			s.FancyExponent = false
			rt := rpl.NewRuntime(make([]byte, 4096), rpl.WithSettings(s))
			obj, err := rt.Parse(c.input)
			require.NoError(t, err)
			assert.Equal(t, c.expect, rt.Render(obj))
		})
	}
}

func TestDecimalPrecisionRoundsBeforeDisplay(t *testing.T) {
	s := rpl.DefaultSettings()
	s.Precision = 3
	rt := rpl.NewRuntime(make([]byte, 4096), rpl.WithSettings(s))
	obj, err := rt.Parse("1.2345")
	require.NoError(t, err)
	assert.Equal(t, "1.23", rt.Render(obj))
}

func TestDecimalFancyExponentUsesSuperscriptGlyphs(t *testing.T) {
	s := rpl.DefaultSettings()
	s.DisplayMode = rpl.DisplaySci
	s.Displayed = 1
	s.FancyExponent = true
	rt := rpl.NewRuntime(make([]byte, 4096), rpl.WithSettings(s))
	obj, err := rt.Parse("123.0")
	require.NoError(t, err)
	assert.Equal(t, "1.2⁳²", rt.Render(obj))
}
