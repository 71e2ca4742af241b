package rpl

// DisplayMode selects how real numbers are rendered (settings.h's display enum).
type DisplayMode int

const (
	DisplayNormal DisplayMode = iota
	DisplayFix
	DisplaySci
	DisplayEng
)

// AngleMode selects the unit trigonometric commands operate in (settings.h's
// angles enum).
type AngleMode int

const (
	AngleDegrees AngleMode = iota
	AngleRadians
	AngleGrads
)

// CommandFormat selects how command names render (settings.h's commands enum).
type CommandFormat int

const (
	CommandLowercase CommandFormat = iota
	CommandUppercase
	CommandCapitalized
	CommandLongForm
)

// stdDisplayed mirrors settings.h's STD_DISPLAYED.
const stdDisplayed = 20

// Settings is the process-wide formatting/arithmetic configuration record
// read by the renderer and by numeric commands. Field set
// and defaults are taken directly from the original settings.h constructor.
type Settings struct {
	Precision     uint16        // internal decimal precision, digits
	DisplayMode   DisplayMode   // NORMAL, FIX, SCI, ENG
	Displayed     uint16        // digits shown
	DecimalMark   rune          // '.' or ','
	ExponentMark  rune          // character used for scientific exponent
	StandardExp   uint16        // threshold above which NORMAL flips to SCI
	AngleMode     AngleMode     // DEGREES, RADIANS, GRADS
	Base          uint8         // default base for #... integer literals
	WordSize      uint16        // bit-width recorded in parsed based integers; arithmetic does not apply it
	CommandFmt    CommandFormat // LOWERCASE, UPPERCASE, CAPITALIZED, LONG_FORM
	ShowDecimal   bool          // show trailing '.' on integral reals
	FancyExponent bool          // use superscript exponent glyphs
}

// DefaultSettings returns the engine's default configuration, matching
// settings::settings()'s initializer list.
func DefaultSettings() Settings {
	return Settings{
		Precision:     34, // BID128_MAXDIGITS
		DisplayMode:   DisplayNormal,
		Displayed:     stdDisplayed,
		DecimalMark:   '.',
		ExponentMark:  '⁳',
		StandardExp:   9,
		AngleMode:     AngleDegrees,
		Base:          16,
		WordSize:      64,
		CommandFmt:    CommandLongForm,
		ShowDecimal:   true,
		FancyExponent: true,
	}
}
