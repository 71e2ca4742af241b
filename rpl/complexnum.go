package rpl

import (
	"math/big"
	"strings"
)

// complexnum.go implements IDRectangular and IDPolar: a complex number
// stored as two embedded numeric children, either (real, imaginary) or
// (modulus, angle), exactly like the fraction family's two-child layout.
// Rectangular and polar are distinct type ids rather than a shared id with
// a mode flag, matching the original complex.h's two concrete classes.
func init() {
	register(IDRectangular, typeOps{
		size:     complexSize,
		parse:    parseRectangular,
		render:   renderRectangular,
		evaluate: evaluatePushSelf,
	})
	register(IDPolar, typeOps{
		size:     complexSize,
		parse:    parsePolar,
		render:   renderPolar,
		evaluate: evaluatePushSelf,
	})
}

func complexSize(a *Arena, payload Address) int {
	firstSize := a.ObjectSize(payload)
	second := payload + Address(firstSize)
	return firstSize + a.ObjectSize(second)
}

// complexChildren returns the addresses of a complex object's two
// components, named generically since the same layout serves both
// rectangular (real, imag) and polar (modulus, angle) variants.
func complexChildren(a *Arena, obj Address) (first, second Address) {
	_, tagLen := a.readTag(obj)
	first = obj + Address(tagLen)
	second = first + Address(a.ObjectSize(first))
	return first, second
}

func renderRectangular(r *Renderer, a *Arena, obj Address) {
	x, y := complexChildren(a, obj)
	renderObject(r, a, x)
	r.WriteString(";")
	renderObject(r, a, y)
}

func renderPolar(r *Renderer, a *Arena, obj Address) {
	mod, angle := complexChildren(a, obj)
	renderObject(r, a, mod)
	r.WriteString("∡")
	renderObject(r, a, angle)
}

// allocComplex builds a composite object embedding copies of a and b,
// shared between rectangular and polar since both are just "two numbers".
// Both components are pinned with safe pointers across the allocation,
// which may run a collection that would otherwise strand an unrooted
// address.
func allocComplex(rt *Runtime, id TypeID, a, b Address) (Address, error) {
	arena := rt.arena
	spA := rt.NewSafePointer(a)
	defer spA.Release()
	spB := rt.NewSafePointer(b)
	defer spB.Release()

	aSz := arena.ObjectSize(a)
	bSz := arena.ObjectSize(b)

	addr, payload := arena.Allocate(rt.gc, aSz+bSz, id)
	if addr == NullAddr {
		return NullAddr, rt.fail(ErrOutOfMemoryKind, "out of memory allocating complex")
	}
	a, b = spA.Get(), spB.Get()
	copy(payload[:aSz], arena.buf[a:a+Address(aSz)])
	copy(payload[aSz:aSz+bSz], arena.buf[b:b+Address(bSz)])
	return addr, nil
}

// allocRectangularFromInts builds a rectangular complex object from two
// machine integers, used by the imaginary-unit command.
func allocRectangularFromInts(rt *Runtime, re, im int64) (Address, error) {
	reAddr, err := allocIntObj(rt, big.NewInt(re))
	if err != nil {
		return NullAddr, err
	}
	sp := rt.NewSafePointer(reAddr)
	defer sp.Release()

	imAddr, err := allocIntObj(rt, big.NewInt(im))
	if err != nil {
		return NullAddr, err
	}
	return allocComplex(rt, IDRectangular, sp.Get(), imAddr)
}

// parseRectangular recognizes "X;Y" where X and Y are numeric literals.
func parseRectangular(p *Parser) (Address, bool, error) {
	start := p.pos
	reAddr, ok, err := parseAnyNumber(p)
	if !ok || err != nil {
		p.pos = start
		return NullAddr, false, err
	}
	if p.peek() != ';' {
		p.pos = start
		return NullAddr, false, nil
	}
	p.pos++

	sp := p.rt.NewSafePointer(reAddr)
	defer sp.Release()

	imAddr, ok, err := parseAnyNumber(p)
	if !ok || err != nil {
		p.pos = start
		return NullAddr, false, err
	}
	addr, err := allocComplex(p.rt, IDRectangular, sp.Get(), imAddr)
	if err != nil {
		return NullAddr, true, err
	}
	return addr, true, nil
}

// parsePolar recognizes "X∡Y" (modulus ANGLE-SIGN angle).
func parsePolar(p *Parser) (Address, bool, error) {
	start := p.pos
	modAddr, ok, err := parseAnyNumber(p)
	if !ok || err != nil {
		p.pos = start
		return NullAddr, false, err
	}
	if !strings.HasPrefix(p.text[p.pos:], "∡") {
		p.pos = start
		return NullAddr, false, nil
	}
	p.pos += len("∡")

	sp := p.rt.NewSafePointer(modAddr)
	defer sp.Release()

	angleAddr, ok, err := parseAnyNumber(p)
	if !ok || err != nil {
		p.pos = start
		return NullAddr, false, err
	}
	addr, err := allocComplex(p.rt, IDPolar, sp.Get(), angleAddr)
	if err != nil {
		return NullAddr, true, err
	}
	return addr, true, nil
}
