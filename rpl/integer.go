package rpl

import (
	"strconv"
	"unicode"
)

// integer.go implements IDInteger / IDNegInteger: a sign-in-the-tag, LEB128
// magnitude encoding -- the sign lives in which type id is used, not in the payload,
// which keeps the common non-negative case's encoding minimal.

func init() {
	register(IDInteger, typeOps{
		size:     integerSize,
		parse:    parseInteger,
		render:   renderInteger(false),
		evaluate: evaluatePushSelf,
	})
	register(IDNegInteger, typeOps{
		size:     integerSize,
		parse:    func(p *Parser) (Address, bool, error) { return NullAddr, false, nil }, // produced only by negation/sign, see parseInteger
		render:   renderInteger(true),
		evaluate: evaluatePushSelf,
	})
}

func integerSize(a *Arena, payload Address) int {
	_, n := decodeMagnitude(a.buf[payload:])
	return n
}

func renderInteger(neg bool) func(r *Renderer, a *Arena, obj Address) {
	return func(r *Renderer, a *Arena, obj Address) {
		mag, _ := decodeMagnitude(a.Payload(obj))
		if neg {
			r.WriteByte('-')
		}
		r.WriteString(strconv.FormatUint(mag, 10))
	}
}

// evaluatePushSelf is shared by every "passive data" type id: evaluating a
// plain value just pushes it, as opposed to commands, whose
// evaluate performs the command's action.
func evaluatePushSelf(rt *Runtime, obj Address) error {
	return rt.Push(obj)
}

// parseInteger recognizes an optionally-signed decimal literal: an optional
// sign followed by digits. It also backstops the fraction literal "N/D":
// since N and D are themselves integer literals,
// the fraction parser in fraction.go re-enters here for each half.
func parseInteger(p *Parser) (Address, bool, error) {
	start := p.pos
	neg := false
	if p.peek() == '-' {
		neg = true
		p.pos++
	} else if p.peek() == '+' {
		p.pos++
	}

	digitsStart := p.pos
	for p.pos < len(p.text) && unicode.IsDigit(rune(p.text[p.pos])) {
		p.pos++
	}
	if p.pos == digitsStart {
		p.pos = start
		return NullAddr, false, nil
	}

	// A following '.' or exponent marker means this is a decimal literal,
	// not a plain integer; let parseDecimal handle it instead.
	if p.pos < len(p.text) && (p.text[p.pos] == '.' || p.text[p.pos] == 'e' || p.text[p.pos] == 'E') {
		p.pos = start
		return NullAddr, false, nil
	}

	digits := p.text[digitsStart:p.pos]
	mag, err := strconv.ParseUint(digits, 10, maxMagnitudeBits)
	if err != nil {
		// Too big for maxMagnitudeBits: fall through to the bignum family.
		addr, err := allocBignumFromDigits(p.rt, digits, neg)
		if err != nil {
			return NullAddr, true, err
		}
		return addr, true, nil
	}

	addr, err := allocMagnitude(p.rt, mag, neg)
	if err != nil {
		return NullAddr, true, err
	}
	return addr, true, nil
}
