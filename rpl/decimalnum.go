package rpl

import (
	"math/big"
	"strconv"
	"strings"
)

// decimalnum.go implements IDDecimal: a decimal floating value stored as a
// zigzag-encoded LEB128 exponent followed by the mantissa as a sign byte
// and a LEB128 byte-length-prefixed big-endian magnitude, i.e. value
// = mantissa * 10^exponent. This sidesteps binary floating point entirely,
// matching the settings DecimalMark/ExponentMark/StandardExp fields that
// only make sense for a base-10 representation (settings.h).
func init() {
	register(IDDecimal, typeOps{
		size:     decimalSize,
		parse:    parseDecimal,
		render:   renderDecimal,
		evaluate: evaluatePushSelf,
	})
}

func decimalSize(a *Arena, payload Address) int {
	buf := a.buf[payload:]
	_, n1, _ := getUvarint(buf)
	_, n2 := decodeSignedMagnitude(buf[n1:])
	return n1 + n2
}

// decodeDecimal reads a decimal payload, returning its mantissa and base-10
// exponent such that the value equals mantissa * 10^exponent.
func decodeDecimal(payload []byte) (mant *big.Int, exp int) {
	ev, n1, _ := getUvarint(payload)
	m, _ := decodeSignedMagnitude(payload[n1:])
	return m, int(zigzagDecode(ev))
}

func decodeSignedMagnitude(payload []byte) (*big.Int, int) {
	neg := payload[0] != 0
	mag, n := decodeByteLen(payload[1:])
	v := new(big.Int).SetBytes(payload[1+n : 1+n+mag])
	if neg {
		v.Neg(v)
	}
	return v, 1 + n + mag
}

func encodeSignedMagnitude(dst []byte, v *big.Int) int {
	neg := v.Sign() < 0
	mag := new(big.Int).Abs(v).Bytes()
	dst[0] = 0
	if neg {
		dst[0] = 1
	}
	n := putUvarint(dst[1:], uint64(len(mag)))
	copy(dst[1+n:], mag)
	return 1 + n + len(mag)
}

func sizeSignedMagnitude(v *big.Int) int {
	mag := new(big.Int).Abs(v).Bytes()
	return 1 + sizeUvarint(uint64(len(mag))) + len(mag)
}

// renderDecimal dispatches to the display-mode-specific renderer, first
// clamping the magnitude to the settings' internal precision -- the same
// two-step "round to Precision, then format for Displayed" pipeline
// settings.h describes, short of BID128 bit-exactness.
func renderDecimal(r *Renderer, a *Arena, obj Address) {
	mant, exp := decodeDecimal(a.Payload(obj))
	s := r.settings

	neg := mant.Sign() < 0
	mag := new(big.Int).Abs(mant)
	if prec := int(s.Precision); prec > 0 {
		mag, exp = roundToDigits(mag, exp, prec)
	}

	switch s.DisplayMode {
	case DisplayFix:
		renderFixed(r, s, mag, exp, neg)
	case DisplaySci:
		renderScientific(r, s, mag, exp, neg, 1)
	case DisplayEng:
		renderScientific(r, s, mag, exp, neg, 3)
	default:
		renderNormal(r, s, mag, exp, neg)
	}
}

// renderNormal is DisplayNormal: fixed-point below the StandardExp
// threshold, scientific notation above it, matching the original's
// "switch to scientific past a magnitude threshold" behavior. Displayed
// caps the number of significant digits shown either way.
func renderNormal(r *Renderer, s *Settings, mag *big.Int, exp int, neg bool) {
	if disp := int(s.Displayed); disp > 0 {
		mag, exp = roundToDigits(mag, exp, disp)
	}
	digits := mag.Text(10)
	standardExp := int(s.StandardExp)
	point := len(digits) + exp
	useSci := point > standardExp || point < -standardExp

	if neg {
		r.WriteByte('-')
	}
	if useSci {
		writeMantissa(r, s, digits[:1], digits[1:])
		writeExponent(r, s, exp+len(digits)-1)
		return
	}

	switch {
	case point <= 0:
		r.WriteString("0")
		r.WriteRune(s.DecimalMark)
		r.WriteString(strings.Repeat("0", -point))
		r.WriteString(digits)
	case point >= len(digits):
		r.WriteString(digits)
		r.WriteString(strings.Repeat("0", point-len(digits)))
		if s.ShowDecimal {
			r.WriteRune(s.DecimalMark)
		}
	default:
		r.WriteString(digits[:point])
		r.WriteRune(s.DecimalMark)
		r.WriteString(digits[point:])
	}
}

// renderFixed is DisplayFix: always exactly Displayed digits after the
// decimal point, regardless of magnitude, pinning the value's exponent to
// -Displayed rather than merely capping significant digits.
func renderFixed(r *Renderer, s *Settings, mag *big.Int, exp int, neg bool) {
	disp := int(s.Displayed)
	if disp < 0 {
		disp = 0
	}
	mag = roundToExponent(mag, exp, -disp)
	digits := mag.Text(10)
	point := len(digits) - disp

	if neg && mag.Sign() != 0 {
		r.WriteByte('-')
	}
	switch {
	case point <= 0:
		r.WriteString("0")
		if disp > 0 || s.ShowDecimal {
			r.WriteRune(s.DecimalMark)
			r.WriteString(strings.Repeat("0", -point))
			r.WriteString(digits)
		}
	case disp == 0:
		r.WriteString(digits)
		if s.ShowDecimal {
			r.WriteRune(s.DecimalMark)
		}
	default:
		r.WriteString(digits[:point])
		r.WriteRune(s.DecimalMark)
		r.WriteString(digits[point:])
	}
}

// renderScientific is DisplaySci (groupSize=1) and DisplayEng (groupSize=3):
// always scientific notation, with the leading digit count chosen so the
// exponent is a multiple of groupSize (ENG) or always 1 (SCI), and exactly
// Displayed digits after the point.
func renderScientific(r *Renderer, s *Settings, mag *big.Int, exp int, neg bool, groupSize int) {
	disp := int(s.Displayed)
	if disp < 0 {
		disp = 0
	}

	if mag.Sign() == 0 {
		r.WriteString("0")
		if disp > 0 || s.ShowDecimal {
			r.WriteRune(s.DecimalMark)
			r.WriteString(strings.Repeat("0", disp))
		}
		writeExponent(r, s, 0)
		return
	}

	normExp := exp + len(mag.Text(10)) - 1
	lead := 1
	if groupSize > 1 {
		shift := ((normExp % groupSize) + groupSize) % groupSize
		lead += shift
		normExp -= shift
	}

	target := normExp - disp
	rounded := roundToExponent(mag, exp, target)
	digits := rounded.Text(10)
	for len(digits) < lead+disp {
		digits = "0" + digits
	}
	if len(digits) > lead+disp {
		// Rounding carried an extra digit (e.g. 9.99 -> 10.0): the value is
		// now exactly 10^(normExp+lead), so regroup the leading digits and
		// the exponent from that.
		normExp += lead
		lead = 1
		if groupSize > 1 {
			shift := ((normExp % groupSize) + groupSize) % groupSize
			lead += shift
			normExp -= shift
		}
		digits = "1" + strings.Repeat("0", lead+disp-1)
	}

	if neg {
		r.WriteByte('-')
	}
	r.WriteString(digits[:lead])
	if disp > 0 || s.ShowDecimal {
		r.WriteRune(s.DecimalMark)
		r.WriteString(digits[lead:])
	}
	writeExponent(r, s, normExp)
}

// writeMantissa writes a leading digit and, unless suppressed by
// ShowDecimal being false with no fractional digits, the decimal mark plus
// the fractional digits.
func writeMantissa(r *Renderer, s *Settings, lead, frac string) {
	r.WriteString(lead)
	if frac != "" || s.ShowDecimal {
		r.WriteRune(s.DecimalMark)
		r.WriteString(frac)
	}
}

// writeExponent writes the exponent marker followed by e, in fancy
// superscript glyphs when FancyExponent is set, plain ASCII otherwise.
func writeExponent(r *Renderer, s *Settings, e int) {
	r.WriteRune(s.ExponentMark)
	digits := strconv.Itoa(e)
	if s.FancyExponent {
		r.WriteString(toSuperscript(digits))
	} else {
		r.WriteString(digits)
	}
}

var superscriptDigits = map[byte]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'-': '⁻', '+': '⁺',
}

func toSuperscript(digits string) string {
	var b strings.Builder
	for i := 0; i < len(digits); i++ {
		if sup, ok := superscriptDigits[digits[i]]; ok {
			b.WriteRune(sup)
		} else {
			b.WriteByte(digits[i])
		}
	}
	return b.String()
}

// roundToDigits rounds the non-negative magnitude mag*10^exp to at most
// digits significant decimal digits (half-up), returning the rounded
// magnitude and its adjusted exponent. digits<=0 disables rounding.
func roundToDigits(mag *big.Int, exp, digits int) (*big.Int, int) {
	if digits <= 0 || mag.Sign() == 0 {
		return mag, exp
	}
	text := mag.Text(10)
	if len(text) <= digits {
		return mag, exp
	}
	drop := len(text) - digits
	rounded := roundToExponent(mag, exp, exp+drop)
	newExp := exp + drop
	if len(rounded.Text(10)) > digits {
		// Rounding carried an extra digit (e.g. 999 -> 1000 at 2 digits):
		// drop it and fold the carry into the exponent.
		rounded = new(big.Int).Quo(rounded, big.NewInt(10))
		newExp++
	}
	return rounded, newExp
}

// roundToExponent rounds the non-negative magnitude mag*10^exp (half-up)
// to a new representation whose exponent is exactly targetExp, scaling up
// (exact) or down (rounding) as needed. Used to pin FIX/SCI/ENG output to
// a specific number of displayed digits rather than merely a digit count.
func roundToExponent(mag *big.Int, exp, targetExp int) *big.Int {
	if targetExp == exp {
		return mag
	}
	if targetExp < exp {
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp-targetExp)), nil)
		return new(big.Int).Mul(mag, scale)
	}
	drop := targetExp - exp
	div := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(drop)), nil)
	rem := new(big.Int)
	q := new(big.Int)
	q.QuoRem(mag, div, rem)
	if new(big.Int).Lsh(rem, 1).CmpAbs(div) >= 0 {
		q.Add(q, big.NewInt(1))
	}
	return q
}

// allocDecimal builds a decimal object for mant * 10^exp.
func allocDecimal(rt *Runtime, mant *big.Int, exp int) (Address, error) {
	zz := zigzagEncode(int64(exp))
	sz := sizeUvarint(zz) + sizeSignedMagnitude(mant)
	addr, payload := rt.arena.Allocate(rt.gc, sz, IDDecimal)
	if addr == NullAddr {
		return NullAddr, rt.fail(ErrOutOfMemoryKind, "out of memory allocating decimal")
	}
	n := putUvarint(payload, zz)
	encodeSignedMagnitude(payload[n:], mant)
	return addr, nil
}

// parseDecimal recognizes digits with a decimal point and/or exponent
// marker; plain integer literals are left to parseInteger.
func parseDecimal(p *Parser) (Address, bool, error) {
	start := p.pos
	neg := false
	if p.peek() == '-' {
		neg = true
		p.pos++
	} else if p.peek() == '+' {
		p.pos++
	}

	intStart := p.pos
	for p.pos < len(p.text) && isDigit(p.text[p.pos]) {
		p.pos++
	}
	intPart := p.text[intStart:p.pos]

	fracPart := ""
	if p.pos < len(p.text) && p.text[p.pos] == '.' {
		p.pos++
		fracStart := p.pos
		for p.pos < len(p.text) && isDigit(p.text[p.pos]) {
			p.pos++
		}
		fracPart = p.text[fracStart:p.pos]
	}

	if intPart == "" && fracPart == "" {
		p.pos = start
		return NullAddr, false, nil
	}

	expVal := 0
	hasExp := false
	if p.pos < len(p.text) && (p.text[p.pos] == 'e' || p.text[p.pos] == 'E') {
		savedPos := p.pos
		p.pos++
		expNeg := false
		if p.pos < len(p.text) && (p.text[p.pos] == '-' || p.text[p.pos] == '+') {
			expNeg = p.text[p.pos] == '-'
			p.pos++
		}
		expStart := p.pos
		for p.pos < len(p.text) && isDigit(p.text[p.pos]) {
			p.pos++
		}
		if p.pos == expStart {
			p.pos = savedPos
		} else {
			e, _ := strconv.Atoi(p.text[expStart:p.pos])
			if expNeg {
				e = -e
			}
			expVal = e
			hasExp = true
		}
	}

	if fracPart == "" && !hasExp {
		// No fractional part and no exponent: this is a plain integer,
		// which parseInteger already handles and renders more compactly.
		p.pos = start
		return NullAddr, false, nil
	}

	digits := intPart + fracPart
	if digits == "" {
		digits = "0"
	}
	mant, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		p.pos = start
		return NullAddr, false, nil
	}
	if neg {
		mant.Neg(mant)
	}
	exp := expVal - len(fracPart)

	addr, err := allocDecimal(p.rt, mant, exp)
	if err != nil {
		return NullAddr, true, err
	}
	return addr, true, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
