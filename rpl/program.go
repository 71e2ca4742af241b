package rpl

// program.go implements IDProgram and IDBlock. Both pack their children the
// same way as a list (list.go's childSequenceSize/children/allocProgram),
// but differ from lists and from each other in evaluate/execute:
//
//   - List:    evaluate pushes itself; no execute override.
//   - Program: evaluate pushes itself; execute iterates children in order,
//     stopping at the first error or a pending interruption.
//   - Block:   evaluate *executes* (does not push) -- blocks are the
//     building material for loops and conditionals, always run inline.
func init() {
	register(IDProgram, typeOps{
		size:     childSequenceSize,
		parse:    parseProgram,
		render:   renderSequence("« ", " »"),
		evaluate: evaluatePushSelf,
		execute:  executeContainer,
	})
	register(IDBlock, typeOps{
		size:     childSequenceSize,
		render:   renderSequence("", ""),
		evaluate: executeContainer,
	})
}

const programOpen = "«"
const programClose = "»"

// executeContainer runs each child of obj in order, stopping at the first
// error or a pending interruption, and is shared by program's execute
// override and block's evaluate.
func executeContainer(rt *Runtime, obj Address) error {
	for _, child := range children(rt.arena, obj) {
		if rt.Interrupted() {
			return rt.fail(ErrInterrupted, "evaluation interrupted")
		}
		if err := rt.Evaluate(child); err != nil {
			return err
		}
	}
	return nil
}

// allocBlock builds a block object from items. Blocks have no surface
// syntax; this is their only constructor, and no command calls it.
func allocBlock(rt *Runtime, items []Address) (Address, error) {
	return allocProgram(rt, IDBlock, items)
}

func parseProgram(p *Parser) (Address, bool, error) {
	if !hasPrefixAt(p.text, p.pos, programOpen) {
		return NullAddr, false, nil
	}
	return parseProgramBody(p)
}

// parseProgramBody parses a «...» delimited program, consuming the opening
// delimiter if present (top-level Parse calls this directly without having
// matched the delimiter itself, per the "with or without outer «»
// delimiters" entry-point contract).
func parseProgramBody(p *Parser) (Address, bool, error) {
	start := p.pos
	consumedDelim := hasPrefixAt(p.text, p.pos, programOpen)
	if consumedDelim {
		p.pos += len(programOpen)
	}

	var pinned pinnedItems
	defer pinned.release()
	for {
		p.skipSpace()
		if consumedDelim && hasPrefixAt(p.text, p.pos, programClose) {
			p.pos += len(programClose)
			break
		}
		if p.pos >= len(p.text) {
			if consumedDelim {
				p.pos = start
				return NullAddr, false, p.rt.fail(ErrSyntax, "unterminated program")
			}
			break
		}
		addr, ok, err := parseOne(p)
		if err != nil {
			return NullAddr, false, err
		}
		if !ok {
			p.pos = start
			return NullAddr, false, p.rt.fail(ErrSyntax, "syntax error inside program")
		}
		pinned.add(p.rt, addr)
	}

	addr, err := allocProgram(p.rt, IDProgram, pinned.addresses())
	if err != nil {
		return NullAddr, true, err
	}
	return addr, true, nil
}

func hasPrefixAt(s string, pos int, prefix string) bool {
	return len(s) >= pos+len(prefix) && s[pos:pos+len(prefix)] == prefix
}
