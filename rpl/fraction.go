package rpl

// fraction.go implements IDFraction, the reduced-rational object family
// added to make the worked example "1 ENTER 3 /" -> rendering "1/3"
// representable. Like complex numbers
// (complex.h), a fraction is a composite that embeds its two children --
// numerator then denominator, each any integer or bignum object -- inline
// in its payload rather than by reference, preserving the one-pass
// heap-walkability invariant of the object encoding.

func init() {
	register(IDFraction, typeOps{
		size:     fractionSize,
		parse:    parseFraction,
		render:   renderFraction,
		evaluate: evaluatePushSelf,
	})
}

func fractionSize(a *Arena, payload Address) int {
	numSize := a.ObjectSize(payload)
	den := payload + Address(numSize)
	return numSize + a.ObjectSize(den)
}

// fractionChildren returns the addresses of obj's numerator and denominator
// child objects.
func fractionChildren(a *Arena, obj Address) (num, den Address) {
	_, tagLen := a.readTag(obj)
	num = obj + Address(tagLen)
	den = num + Address(a.ObjectSize(num))
	return num, den
}

func renderFraction(r *Renderer, a *Arena, obj Address) {
	num, den := fractionChildren(a, obj)
	renderObject(r, a, num)
	r.WriteByte('/')
	renderObject(r, a, den)
}

// allocFraction builds a fraction object embedding copies of the num/den
// child objects (whose bytes must already be canonical -- no common factor,
// denominator positive), matching complex's constructor shape
// (complex(x, y, type) in complex.h). num/den are pinned with safe pointers
// for the duration of the allocation: Allocate may run a collection, and
// without a registered root neither address would survive it.
func allocFraction(rt *Runtime, num, den Address) (Address, error) {
	a := rt.arena
	spNum := rt.NewSafePointer(num)
	defer spNum.Release()
	spDen := rt.NewSafePointer(den)
	defer spDen.Release()

	numSz := a.ObjectSize(num)
	denSz := a.ObjectSize(den)

	addr, payload := a.Allocate(rt.gc, numSz+denSz, IDFraction)
	if addr == NullAddr {
		return NullAddr, rt.fail(ErrOutOfMemoryKind, "out of memory allocating fraction")
	}
	num, den = spNum.Get(), spDen.Get()
	copy(payload[:numSz], a.buf[num:num+Address(numSz)])
	copy(payload[numSz:numSz+denSz], a.buf[den:den+Address(denSz)])
	return addr, nil
}

// parseFraction recognizes "N/D" where N and D are each integer literals,
// required so that parse(render(fraction)) round-trips.
func parseFraction(p *Parser) (Address, bool, error) {
	start := p.pos
	numAddr, ok, err := parseInteger(p)
	if !ok || err != nil {
		p.pos = start
		return NullAddr, false, err
	}
	if p.peek() != '/' {
		p.pos = start
		return NullAddr, false, nil
	}
	p.pos++

	sp := p.rt.NewSafePointer(numAddr)
	defer sp.Release()

	denAddr, ok, err := parseInteger(p)
	if !ok || err != nil {
		p.pos = start
		return NullAddr, false, err
	}
	if !isNonNegative(p.rt.arena, denAddr) {
		p.pos = start
		return NullAddr, false, nil
	}

	num, dok := readNumber(p.rt.arena, sp.Get())
	den, _ := readNumber(p.rt.arena, denAddr)
	if !dok || den.Sign() == 0 {
		p.pos = start
		return NullAddr, false, nil
	}
	result, err := allocNumber(p.rt, num.Quo(num, den))
	if err != nil {
		return NullAddr, true, err
	}
	return result, true, nil
}

func isNonNegative(a *Arena, addr Address) bool {
	return a.TypeOf(addr) != IDNegInteger && a.TypeOf(addr) != IDBignumNegative
}
