package rpl

import (
	"math"
	"math/big"
)

// commands_arith.go implements the arithmetic command family. Every exact
// binary/unary operation is expressed once over big.Rat via readNumber/
// allocNumber (numeric.go), so int64-vs-bignum promotion and fraction
// reduction happen automatically rather than needing a case per
// representation pair. Transcendental commands (sqrt, sin, cos, tan) leave
// the exact-rational world and produce a decimal result, since their
// results are not in general rational.

// arithBinary builds a command evaluator that pops two numeric operands
// (second-from-top, then top, matching stack order "a b op"), applies op,
// and pushes the canonicalized result.
func arithBinary(op func(dst, a, b *big.Rat) (*big.Rat, error)) func(*Runtime, Address) error {
	return func(rt *Runtime, _ Address) error {
		bAddr, err := rt.Pop()
		if err != nil {
			return err
		}
		aAddr, err := rt.Pop()
		if err != nil {
			return err
		}
		a, ok1 := readNumber(rt.arena, aAddr)
		b, ok2 := readNumber(rt.arena, bAddr)
		if !ok1 || !ok2 {
			return rt.fail(ErrBadArgumentType, "expected two numeric operands")
		}
		result, err := op(new(big.Rat), a, b)
		if err != nil {
			return err
		}
		addr, err := allocNumber(rt, result)
		if err != nil {
			return err
		}
		return rt.Push(addr)
	}
}

// arithUnary mirrors arithBinary for single-operand commands.
func arithUnary(op func(dst, a *big.Rat) (*big.Rat, error)) func(*Runtime, Address) error {
	return func(rt *Runtime, _ Address) error {
		aAddr, err := rt.Pop()
		if err != nil {
			return err
		}
		a, ok := readNumber(rt.arena, aAddr)
		if !ok {
			return rt.fail(ErrBadArgumentType, "expected a numeric operand")
		}
		result, err := op(new(big.Rat), a)
		if err != nil {
			return err
		}
		addr, err := allocNumber(rt, result)
		if err != nil {
			return err
		}
		return rt.Push(addr)
	}
}

func addRat(dst, a, b *big.Rat) (*big.Rat, error) { return dst.Add(a, b), nil }
func subRat(dst, a, b *big.Rat) (*big.Rat, error) { return dst.Sub(a, b), nil }
func mulRat(dst, a, b *big.Rat) (*big.Rat, error) { return dst.Mul(a, b), nil }

func divRat(dst, a, b *big.Rat) (*big.Rat, error) {
	if b.Sign() == 0 {
		return nil, &RuntimeError{Kind: ErrDivideByZero, Message: "division by zero"}
	}
	return dst.Quo(a, b), nil
}

func negRat(dst, a *big.Rat) (*big.Rat, error) { return dst.Neg(a), nil }

func invRat(dst, a *big.Rat) (*big.Rat, error) {
	if a.Sign() == 0 {
		return nil, &RuntimeError{Kind: ErrDivideByZero, Message: "inverse of zero"}
	}
	return dst.Inv(a), nil
}

// cmdEnter commits the open command-line editor buffer by parsing and
// pushing its contents; if no editor is open this is a no-op, matching the
// original's ENTER semantics of tokenizing whatever the user has typed.
func cmdEnter(rt *Runtime, _ Address) error {
	if !rt.EditorOpen() {
		return nil
	}
	text := rt.EditorText()
	// Clear first: Parse allocates at the Temporaries cursor, which sits
	// above the editor bytes, and clearing afterwards would cut into the
	// freshly parsed objects.
	rt.EditorClear()
	obj, err := rt.Parse(text)
	if err != nil {
		return err
	}
	return rt.Evaluate(obj)
}

// floatArg pops one numeric operand and converts it to float64 for
// transcendental commands, which necessarily leave exact rational
// arithmetic.
func floatArg(rt *Runtime) (float64, error) {
	addr, err := rt.Pop()
	if err != nil {
		return 0, err
	}
	r, ok := readNumber(rt.arena, addr)
	if !ok {
		return 0, rt.fail(ErrBadArgumentType, "expected a numeric operand")
	}
	f, _ := r.Float64()
	return f, nil
}

func pushFloat(rt *Runtime, f float64) error {
	mant, exp := decimalFromFloat(f)
	addr, err := allocDecimal(rt, mant, exp)
	if err != nil {
		return err
	}
	return rt.Push(addr)
}

// decimalFromFloat converts f to a mantissa*10^exp pair carrying 18
// significant digits (17 after the leading one), by way of math/big's
// scientific-notation float formatter.
func decimalFromFloat(f float64) (*big.Int, int) {
	s := big.NewFloat(f).Text('e', 17)
	// s looks like "-1.23450000000000000e+05"; math/big.Rat.SetString
	// accepts scientific notation directly, which keeps this exact and
	// avoids hand-rolling exponent parsing.
	r, _ := new(big.Rat).SetString(s)
	num := new(big.Int).Set(r.Num())
	den := r.Denom()
	// SetString reduces the fraction, so den is 2^a*5^b rather than a power
	// of 10 (1.5 becomes 3/2): find the smallest power of 10 that den
	// divides and scale num by the same factor.
	exp := 0
	p := big.NewInt(1)
	ten := big.NewInt(10)
	for new(big.Int).Rem(p, den).Sign() != 0 {
		p.Mul(p, ten)
		exp--
	}
	num.Mul(num, new(big.Int).Quo(p, den))
	return num, exp
}

func cmdSqrt(rt *Runtime, _ Address) error {
	f, err := floatArg(rt)
	if err != nil {
		return err
	}
	if f < 0 {
		return rt.fail(ErrUndefinedResult, "square root of negative number")
	}
	return pushFloat(rt, math.Sqrt(f))
}

// toRadians converts an angle in the runtime's configured AngleMode to
// radians, as required by the standard library's trigonometric functions.
func toRadians(rt *Runtime, v float64) float64 {
	switch rt.settings.AngleMode {
	case AngleDegrees:
		return v * math.Pi / 180
	case AngleGrads:
		return v * math.Pi / 200
	default:
		return v
	}
}

func cmdSin(rt *Runtime, _ Address) error {
	f, err := floatArg(rt)
	if err != nil {
		return err
	}
	return pushFloat(rt, math.Sin(toRadians(rt, f)))
}

func cmdCos(rt *Runtime, _ Address) error {
	f, err := floatArg(rt)
	if err != nil {
		return err
	}
	return pushFloat(rt, math.Cos(toRadians(rt, f)))
}

func cmdTan(rt *Runtime, _ Address) error {
	f, err := floatArg(rt)
	if err != nil {
		return err
	}
	return pushFloat(rt, math.Tan(toRadians(rt, f)))
}

// cmdImaginaryUnit pushes the rectangular complex value (0, 1).
func cmdImaginaryUnit(rt *Runtime, _ Address) error {
	addr, err := allocRectangularFromInts(rt, 0, 1)
	if err != nil {
		return err
	}
	return rt.Push(addr)
}
