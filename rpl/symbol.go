package rpl

import "unicode"

// symbol.go implements IDSymbol: a named reference, stored as a LEB128
// byte-length followed by the UTF-8 name bytes. Evaluating a symbol that
// names a command runs the command; any other symbol pushes itself, so it
// can be handed to STO/RCL/PURGE as a name whether or not it is bound.
func init() {
	register(IDSymbol, typeOps{
		size:     symbolSize,
		parse:    parseSymbol,
		render:   renderSymbol,
		evaluate: evaluateSymbol,
	})
}

func symbolSize(a *Arena, payload Address) int {
	n, sz := decodeByteLen(a.buf[payload:])
	return sz + n
}

func renderSymbol(r *Renderer, a *Arena, obj Address) {
	r.WriteString(symbolName(a, obj))
}

func symbolName(a *Arena, obj Address) string {
	payload := a.Payload(obj)
	n, sz := decodeByteLen(payload)
	return string(payload[sz : sz+n])
}

// allocSymbol builds a symbol object for name.
func allocSymbol(rt *Runtime, name string) (Address, error) {
	sz := sizeUvarint(uint64(len(name))) + len(name)
	addr, payload := rt.arena.Allocate(rt.gc, sz, IDSymbol)
	if addr == NullAddr {
		return NullAddr, rt.fail(ErrOutOfMemoryKind, "out of memory allocating symbol")
	}
	n := putUvarint(payload, uint64(len(name)))
	copy(payload[n:], name)
	return addr, nil
}

// evaluateSymbol resolves a symbol: a command name invokes the command,
// and any other name pushes the symbol itself so it can be used as a
// literal (its bound value, if any, is fetched with RCL).
func evaluateSymbol(rt *Runtime, obj Address) error {
	name := symbolName(rt.arena, obj)
	if id, ok := rt.names.lookup(name); ok {
		ops := opsFor(id)
		if ops == nil {
			return rt.fail(ErrBadArgumentType, "unknown command %q", name)
		}
		return ops.evaluate(rt, NullAddr)
	}
	return rt.Push(obj)
}

// parseSymbol recognizes a bare identifier: a letter or underscore followed
// by letters, digits, or underscores.
func parseSymbol(p *Parser) (Address, bool, error) {
	start := p.pos
	if !isSymbolStart(p.peek()) {
		return NullAddr, false, nil
	}
	p.pos++
	for p.pos < len(p.text) && isSymbolCont(p.text[p.pos]) {
		p.pos++
	}
	name := p.text[start:p.pos]
	addr, err := allocSymbol(p.rt, name)
	if err != nil {
		return NullAddr, true, err
	}
	return addr, true, nil
}

func isSymbolStart(c byte) bool {
	return c == '_' || unicode.IsLetter(rune(c))
}

func isSymbolCont(c byte) bool {
	return c == '_' || unicode.IsLetter(rune(c)) || unicode.IsDigit(rune(c))
}
