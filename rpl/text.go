package rpl

// text.go implements IDText: a double-quoted string literal, stored as a
// LEB128 byte-length followed by the raw UTF-8 bytes (no escape processing,
// matching the "no escape processing required beyond the quote" textual
// syntax rule).
func init() {
	register(IDText, typeOps{
		size:     textSize,
		parse:    parseText,
		render:   renderText,
		evaluate: evaluatePushSelf,
	})
}

func textSize(a *Arena, payload Address) int {
	n, sz := decodeByteLen(a.buf[payload:])
	return sz + n
}

func textContent(a *Arena, obj Address) string {
	payload := a.Payload(obj)
	n, sz := decodeByteLen(payload)
	return string(payload[sz : sz+n])
}

func renderText(r *Renderer, a *Arena, obj Address) {
	r.WriteByte('"')
	r.WriteString(textContent(a, obj))
	r.WriteByte('"')
}

// allocText builds a text object for s.
func allocText(rt *Runtime, s string) (Address, error) {
	sz := sizeUvarint(uint64(len(s))) + len(s)
	addr, payload := rt.arena.Allocate(rt.gc, sz, IDText)
	if addr == NullAddr {
		return NullAddr, rt.fail(ErrOutOfMemoryKind, "out of memory allocating text")
	}
	n := putUvarint(payload, uint64(len(s)))
	copy(payload[n:], s)
	return addr, nil
}

// parseText recognizes a double-quoted literal; the closing quote must be
// present, and quote characters inside the text cannot be escaped.
func parseText(p *Parser) (Address, bool, error) {
	if p.peek() != '"' {
		return NullAddr, false, nil
	}
	start := p.pos
	p.pos++
	contentStart := p.pos
	for p.pos < len(p.text) && p.text[p.pos] != '"' {
		p.pos++
	}
	if p.pos >= len(p.text) {
		p.pos = start
		return NullAddr, false, p.rt.fail(ErrSyntax, "unterminated text literal")
	}
	content := p.text[contentStart:p.pos]
	p.pos++ // closing quote

	addr, err := allocText(p.rt, content)
	if err != nil {
		return NullAddr, true, err
	}
	return addr, true, nil
}
