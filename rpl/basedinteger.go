package rpl

import "math/big"

// basedinteger.go implements IDBasedInteger: an integer tagged with a radix
// (2, 8, 10, or 16) and a word size. Parsing takes the default radix from
// the settings' Base and the word size from WordSize; rendering uses the
// radix stored in the object rather than always decimal. The stored word
// size is not applied by arithmetic, whose results are plain integers
// (see readNumber in numeric.go). The payload is a
// LEB128 word-size-in-bits, a single base-selector byte, then a LEB128
// byte-length-prefixed big-endian magnitude -- grounded on settings.h's
// WordSize/Base fields, which this family exists to exercise.
func init() {
	register(IDBasedInteger, typeOps{
		size:     basedIntegerSize,
		parse:    parseBasedInteger,
		render:   renderBasedInteger,
		evaluate: evaluatePushSelf,
	})
}

func basedIntegerSize(a *Arena, payload Address) int {
	_, n := decodeBasedIntegerAt(a.buf[payload:])
	return n
}

func renderBasedInteger(r *Renderer, a *Arena, obj Address) {
	_, base, mag := decodeBasedInteger(a.Payload(obj))
	switch base {
	case 2:
		r.WriteString("#")
		r.WriteString(mag.Text(2))
		r.WriteString("b")
	case 8:
		r.WriteString("#")
		r.WriteString(mag.Text(8))
		r.WriteString("o")
	case 10:
		r.WriteString("#")
		r.WriteString(mag.Text(10))
		r.WriteString("d")
	default:
		r.WriteString("#")
		r.WriteString(mag.Text(16))
		r.WriteString("h")
	}
}

// decodeBasedInteger reads a based-integer payload, returning its word
// width in bits, its radix, and its magnitude.
func decodeBasedInteger(payload []byte) (bits, base int, mag *big.Int) {
	bi, n := decodeBasedIntegerAt(payload)
	_ = n
	return bi.bits, bi.base, bi.mag
}

type basedIntegerFields struct {
	bits int
	base int
	mag  *big.Int
}

func decodeBasedIntegerAt(payload []byte) (basedIntegerFields, int) {
	wordBits, n1 := decodeMagnitude(payload)
	base := int(payload[n1])
	rest := payload[n1+1:]
	n, sz := decodeByteLen(rest)
	mag := new(big.Int).SetBytes(rest[sz : sz+n])
	total := n1 + 1 + sz + n
	return basedIntegerFields{bits: int(wordBits), base: base, mag: mag}, total
}

// allocBasedInteger builds a based-integer object of the given radix and
// word size in bits.
func allocBasedInteger(rt *Runtime, base, bits int, mag *big.Int) (Address, error) {
	magBytes := mag.Bytes()
	tailSize := sizeUvarint(uint64(len(magBytes))) + len(magBytes)
	sz := sizeUvarint(uint64(bits)) + 1 + tailSize

	addr, payload := rt.arena.Allocate(rt.gc, sz, IDBasedInteger)
	if addr == NullAddr {
		return NullAddr, rt.fail(ErrOutOfMemoryKind, "out of memory allocating based integer")
	}
	off := putUvarint(payload, uint64(bits))
	payload[off] = byte(base)
	off++
	n := putUvarint(payload[off:], uint64(len(magBytes)))
	copy(payload[off+n:], magBytes)
	return addr, nil
}

// parseBasedInteger recognizes "#NNNx" radix literals, where x selects
// binary/octal/decimal/hexadecimal, using the settings' WordSize for the
// resulting object's width. 'b' and 'd' are both valid hex digits and valid
// suffix letters, so the run is scanned maximally first and the suffix is
// peeled off on the right rather than decided digit-by-digit on the left:
// "#123d" must mean decimal 123, not hex "123d" with no suffix at all.
func parseBasedInteger(p *Parser) (Address, bool, error) {
	start := p.pos
	if p.peek() != '#' {
		return NullAddr, false, nil
	}
	p.pos++

	runStart := p.pos
	for p.pos < len(p.text) && isBasedRuneChar(p.text[p.pos]) {
		p.pos++
	}
	run := p.text[runStart:p.pos]
	if run == "" {
		p.pos = start
		return NullAddr, false, nil
	}

	if suffixBase, ok := suffixBaseOf(run[len(run)-1]); ok && len(run) > 1 {
		if mag, ok := new(big.Int).SetString(run[:len(run)-1], suffixBase); ok {
			return finishBasedInteger(p, suffixBase, mag)
		}
	}

	// No (valid) suffix: the whole run is digits in the current default base.
	mag, ok := new(big.Int).SetString(run, int(p.rt.settings.Base))
	if !ok {
		p.pos = start
		return NullAddr, false, nil
	}
	return finishBasedInteger(p, int(p.rt.settings.Base), mag)
}

func finishBasedInteger(p *Parser, base int, mag *big.Int) (Address, bool, error) {
	addr, err := allocBasedInteger(p.rt, base, int(p.rt.settings.WordSize), mag)
	if err != nil {
		return NullAddr, true, err
	}
	return addr, true, nil
}

func suffixBaseOf(c byte) (int, bool) {
	switch c {
	case 'b', 'B':
		return 2, true
	case 'o', 'O':
		return 8, true
	case 'd', 'D':
		return 10, true
	case 'h', 'H':
		return 16, true
	}
	return 0, false
}

// isBasedDigit matches a hexadecimal digit.
func isBasedDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// isBasedRuneChar matches any character that can appear in a based-integer
// literal's digit-plus-suffix run: hex digits plus the non-hex suffix
// letters 'o'/'h' (the hex-digit-shaped suffixes 'b'/'d' are already
// covered by the hex digit range).
func isBasedRuneChar(c byte) bool {
	return isBasedDigit(c) || c == 'o' || c == 'O' || c == 'h' || c == 'H'
}
