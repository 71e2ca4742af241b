package rpl

import "math/big"

// This file provides the shared numeric decode/encode path used by every
// arithmetic command (commands_arith.go) and by the integer/based-integer/
// bignum/fraction/decimal object families. Representing every exact numeric
// object uniformly as a math/big.Rat during arithmetic is what makes the
// overflow-promotion and rational-rendering scenarios ("9223372036854775806
// ENTER 1 +" -> int64 result, "18446744073709551615 ENTER 1 +" -> bignum,
// "1 ENTER 3 /" -> "1/3") fall out of one canonicalization routine instead
// of needing bespoke per-type-pair arithmetic.
//
// math/big is the standard library's arbitrary-precision package; no
// third-party bignum/rational library appears anywhere in the retrieved
// reference material, so this is the idiomatic choice.

// maxMagnitudeBits is the largest magnitude bit length still represented by
// IDInteger/IDNegInteger; anything larger promotes to a bignum object.
const maxMagnitudeBits = 63

// readNumber decodes any numeric object into an exact big.Rat. Decimal
// objects convert exactly from their mantissa and base-10 exponent, since
// bit-exact BID128 semantics are out of scope. Based integers contribute
// only their magnitude; their radix and word size are not carried over.
func readNumber(a *Arena, addr Address) (*big.Rat, bool) {
	switch a.TypeOf(addr) {
	case IDInteger, IDNegInteger:
		mag, _ := decodeMagnitude(a.Payload(addr))
		r := new(big.Rat).SetUint64(mag)
		if a.TypeOf(addr) == IDNegInteger {
			r.Neg(r)
		}
		return r, true

	case IDBasedInteger:
		_, _, mag := decodeBasedInteger(a.Payload(addr))
		return new(big.Rat).SetInt(mag), true

	case IDBignumPositive, IDBignumNegative:
		mag := decodeBignumMagnitude(a.Payload(addr))
		r := new(big.Rat).SetInt(mag)
		if a.TypeOf(addr) == IDBignumNegative {
			r.Neg(r)
		}
		return r, true

	case IDFraction:
		num, den := fractionChildren(a, addr)
		nr, ok1 := readNumber(a, num)
		dr, ok2 := readNumber(a, den)
		if !ok1 || !ok2 {
			return nil, false
		}
		return new(big.Rat).Quo(nr, dr), true

	case IDDecimal:
		mant, exp := decodeDecimal(a.Payload(addr))
		r := new(big.Rat).SetInt(mant)
		if exp >= 0 {
			scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil)
			r.Mul(r, new(big.Rat).SetInt(scale))
		} else {
			scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-exp)), nil)
			r.Quo(r, new(big.Rat).SetInt(scale))
		}
		return r, true

	default:
		return nil, false
	}
}

// allocNumber canonicalizes r to the smallest-fitting exact object:
// int64-backed IDInteger/IDNegInteger when it fits, otherwise a bignum, or
// an IDFraction when the value is not integral.
func allocNumber(rt *Runtime, r *big.Rat) (Address, error) {
	if r.IsInt() {
		return allocIntObj(rt, r.Num())
	}

	num, err := allocIntObj(rt, r.Num())
	if err != nil {
		return NullAddr, err
	}
	sp := rt.NewSafePointer(num)
	defer sp.Release()

	den, err := allocIntObj(rt, new(big.Int).Abs(r.Denom()))
	if err != nil {
		return NullAddr, err
	}
	return allocFraction(rt, sp.Get(), den)
}

// allocIntObj builds the smallest object representing the arbitrary
// precision integer v: IDInteger/IDNegInteger if its magnitude fits in
// maxMagnitudeBits bits, else a bignum.
func allocIntObj(rt *Runtime, v *big.Int) (Address, error) {
	neg := v.Sign() < 0
	mag := new(big.Int).Abs(v)
	if mag.BitLen() <= maxMagnitudeBits {
		return allocMagnitude(rt, mag.Uint64(), neg)
	}
	return allocBignum(rt, mag, neg)
}

func allocMagnitude(rt *Runtime, mag uint64, neg bool) (Address, error) {
	id := IDInteger
	if neg && mag != 0 {
		id = IDNegInteger
	}
	sz := sizeUvarint(mag)
	addr, payload := rt.arena.Allocate(rt.gc, sz, id)
	if addr == NullAddr {
		return NullAddr, rt.fail(ErrOutOfMemoryKind, "out of memory allocating integer")
	}
	putUvarint(payload, mag)
	return addr, nil
}

// decodeMagnitude reads an integer/neg-integer payload, returning the
// magnitude and the number of bytes consumed.
func decodeMagnitude(payload []byte) (mag uint64, n int) {
	mag, n, _ = getUvarint(payload)
	return mag, n
}
