package rpl

// parser.go implements the textual-syntax parser: a cursor over the input
// text plus a back-reference to the runtime doing the allocating. Parsing
// tries each applicable type id's parse routine in a fixed order; the first
// one that reports "parsed" wins. If none do, parsing fails with a syntax
// error.
type Parser struct {
	text string
	pos  int
	rt   *Runtime
}

// peek returns the byte at the cursor, or 0 at end of input. Every
// ASCII-only lookahead in the parse routines uses this; multi-byte
// delimiters (the polar angle mark) check with strings.HasPrefix instead.
func (p *Parser) peek() byte {
	if p.pos >= len(p.text) {
		return 0
	}
	return p.text[p.pos]
}

// parseDispatchOrder lists the parse attempts in the fixed order required
// for literals to disambiguate correctly: complex literals before the plain
// numbers they start with, numeric literals and based integers before
// delimited forms, commands before symbols, so that a word which happens to
// be a command name still resolves through one consistent path
// (parseCommand wins when it matches; otherwise the word becomes a plain
// symbol).
var parseDispatchOrder []func(*Parser) (Address, bool, error)

func init() {
	parseDispatchOrder = []func(*Parser) (Address, bool, error){
		parseRectangular,
		parsePolar,
		parseBasedInteger,
		parseDecimal,
		parseFraction,
		parseInteger,
		parseText,
		parseList,
		parseProgram,
		parseCommand,
		parseSymbol,
	}
}

// parseOne tries each registered parse routine in order at the current
// cursor, skipping leading whitespace first.
func parseOne(p *Parser) (Address, bool, error) {
	p.skipSpace()
	if p.pos >= len(p.text) {
		return NullAddr, false, nil
	}
	for _, try := range parseDispatchOrder {
		save := p.pos
		addr, ok, err := try(p)
		if err != nil {
			return NullAddr, false, err
		}
		if ok {
			return addr, true, nil
		}
		p.pos = save
	}
	return NullAddr, false, nil
}

// parseAnyNumber tries each non-composite numeric literal family in turn --
// the subset of parseDispatchOrder that the complex-number component
// parsers accept as a real-valued part.
func parseAnyNumber(p *Parser) (Address, bool, error) {
	for _, try := range []func(*Parser) (Address, bool, error){
		parseBasedInteger, parseDecimal, parseFraction, parseInteger,
	} {
		save := p.pos
		addr, ok, err := try(p)
		if err != nil {
			return NullAddr, false, err
		}
		if ok {
			return addr, true, nil
		}
		p.pos = save
	}
	return NullAddr, false, nil
}

// pinnedItems accumulates container elements as safe pointers while a parse
// loop keeps calling back into parseOne for the next sibling: each such call
// can itself allocate and trigger a collection, which would otherwise be
// free to reclaim an earlier item that isn't rooted anywhere yet.
type pinnedItems struct {
	sps []*SafePointer
}

func (pi *pinnedItems) add(rt *Runtime, addr Address) {
	pi.sps = append(pi.sps, rt.NewSafePointer(addr))
}

func (pi *pinnedItems) addresses() []Address {
	out := make([]Address, len(pi.sps))
	for i, sp := range pi.sps {
		out[i] = sp.Get()
	}
	return out
}

// release unpins every item, LIFO, matching safe pointers' nesting
// requirement.
func (pi *pinnedItems) release() {
	for i := len(pi.sps) - 1; i >= 0; i-- {
		pi.sps[i].Release()
	}
}

func (p *Parser) skipSpace() {
	for p.pos < len(p.text) {
		switch p.text[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

// Parse parses a full textual program, with or without outer program
// delimiters, and returns a single object (wrapping bare token sequences in
// an implicit program when more than one token is present).
func (rt *Runtime) Parse(text string) (Address, error) {
	p := &Parser{text: text, rt: rt}
	p.skipSpace()
	if hasPrefixAt(p.text, p.pos, programOpen) {
		addr, _, err := parseProgramBody(p)
		return addr, err
	}

	var pinned pinnedItems
	defer pinned.release()
	for {
		p.skipSpace()
		if p.pos >= len(p.text) {
			break
		}
		addr, ok, err := parseOne(p)
		if err != nil {
			return NullAddr, err
		}
		if !ok {
			return NullAddr, rt.fail(ErrSyntax, "syntax error at position %d", p.pos)
		}
		pinned.add(rt, addr)
	}

	items := pinned.addresses()
	if len(items) == 1 {
		return items[0], nil
	}
	return allocProgram(rt, IDProgram, items)
}
