package rpl

import "math/big"

// bignum.go implements IDBignumPositive / IDBignumNegative: an
// arbitrary-precision magnitude, stored as a
// LEB128 byte count followed by the magnitude's big-endian bytes. Used
// whenever an integer result no longer fits in maxMagnitudeBits bits --
// the "promotion on overflow" scenario
// ("18446744073709551615 ENTER 1 +" -> bignum "18446744073709551616").

func init() {
	register(IDBignumPositive, typeOps{
		size:     bignumSize,
		render:   renderBignum(false),
		evaluate: evaluatePushSelf,
	})
	register(IDBignumNegative, typeOps{
		size:     bignumSize,
		render:   renderBignum(true),
		evaluate: evaluatePushSelf,
	})
}

func bignumSize(a *Arena, payload Address) int {
	n, sz := decodeByteLen(a.buf[payload:])
	return sz + n
}

func renderBignum(neg bool) func(r *Renderer, a *Arena, obj Address) {
	return func(r *Renderer, a *Arena, obj Address) {
		mag := decodeBignumMagnitude(a.Payload(obj))
		if neg {
			r.WriteByte('-')
		}
		r.WriteString(mag.String())
	}
}

// allocBignum allocates a bignum object for the given non-negative
// magnitude and sign.
func allocBignum(rt *Runtime, mag *big.Int, neg bool) (Address, error) {
	id := IDBignumPositive
	if neg && mag.Sign() != 0 {
		id = IDBignumNegative
	}
	raw := mag.Bytes()
	sz := sizeUvarint(uint64(len(raw))) + len(raw)
	addr, payload := rt.arena.Allocate(rt.gc, sz, id)
	if addr == NullAddr {
		return NullAddr, rt.fail(ErrOutOfMemoryKind, "out of memory allocating bignum")
	}
	n := putUvarint(payload, uint64(len(raw)))
	copy(payload[n:], raw)
	return addr, nil
}

// allocBignumFromDigits parses a decimal digit string too large for a
// machine word directly into a bignum object.
func allocBignumFromDigits(rt *Runtime, digits string, neg bool) (Address, error) {
	mag, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return NullAddr, rt.fail(ErrSyntax, "invalid integer literal %q", digits)
	}
	return allocBignum(rt, mag, neg)
}

func decodeBignumMagnitude(payload []byte) *big.Int {
	n, sz := decodeByteLen(payload)
	return new(big.Int).SetBytes(payload[sz : sz+n])
}

func decodeByteLen(payload []byte) (n, sz int) {
	v, consumed, _ := getUvarint(payload)
	return int(v), consumed
}
