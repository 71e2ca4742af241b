package rpl

import "strings"

// command.go implements the empty-payload command family and the name
// table used by both the parser (to recognize command words) and the
// symbol evaluator (to resolve a bare identifier to a command). Every
// command id's size is always zero: nothing beyond the tag is ever stored.
func init() {
	for id, name := range commandSpellings {
		id, name := id, name
		register(id, typeOps{
			size:     func(a *Arena, payload Address) int { return 0 },
			render:   func(r *Renderer, a *Arena, obj Address) { r.WriteString(formatCommandName(r.settings, name)) },
			evaluate: commandHandlers[id],
		})
	}
}

// commandHandlers maps each command id to its evaluate action. Declared as
// a package-level var (rather than filled in from multiple init functions)
// so that command.go's own init, which reads this map while building the
// dispatch table, always sees it fully populated regardless of file
// compilation order -- package-level var initialization always completes
// before any init() runs.
var commandHandlers = map[TypeID]func(rt *Runtime, obj Address) error{
	CmdEnter:         cmdEnter,
	CmdAdd:           arithBinary(addRat),
	CmdSub:           arithBinary(subRat),
	CmdMul:           arithBinary(mulRat),
	CmdDiv:           arithBinary(divRat),
	CmdNeg:           arithUnary(negRat),
	CmdInv:           arithUnary(invRat),
	CmdSqrt:          cmdSqrt,
	CmdSin:           cmdSin,
	CmdCos:           cmdCos,
	CmdTan:           cmdTan,
	CmdDup:           cmdDup,
	CmdDrop:          cmdDrop,
	CmdSwap:          cmdSwap,
	CmdOver:          cmdOver,
	CmdRot:           cmdRot,
	CmdImaginaryUnit: cmdImaginaryUnit,
	CmdStore:         cmdStore,
	CmdRecall:        cmdRecall,
	CmdPurge:         cmdPurge,
}

// commandSpellings is the canonical (long-form, lowercase) spelling of each
// command id, used both to build the name table and to render a command
// back to text.
var commandSpellings = map[TypeID]string{
	CmdEnter:         "enter",
	CmdAdd:           "+",
	CmdSub:           "-",
	CmdMul:           "*",
	CmdDiv:           "/",
	CmdNeg:           "neg",
	CmdInv:           "inv",
	CmdSqrt:          "sqrt",
	CmdSin:           "sin",
	CmdCos:           "cos",
	CmdTan:           "tan",
	CmdDup:           "dup",
	CmdDrop:          "drop",
	CmdSwap:          "swap",
	CmdOver:          "over",
	CmdRot:           "rot",
	CmdImaginaryUnit: "i",
	CmdStore:         "sto",
	CmdRecall:        "rcl",
	CmdPurge:         "purge",
}

// commandNames is the name -> id lookup table built once at startup from
// the static commandSpellings list rather than grown at runtime; the
// id -> name direction is commandSpellings itself.
type commandNames struct {
	byName map[string]TypeID
}

func newCommandNames() *commandNames {
	t := &commandNames{byName: make(map[string]TypeID, len(commandSpellings))}
	for id, name := range commandSpellings {
		t.byName[strings.ToLower(name)] = id
	}
	return t
}

func (t *commandNames) lookup(name string) (TypeID, bool) {
	id, ok := t.byName[strings.ToLower(name)]
	return id, ok
}

// formatCommandName renders name per the active CommandFmt setting.
func formatCommandName(s *Settings, name string) string {
	switch s.CommandFmt {
	case CommandUppercase:
		return strings.ToUpper(name)
	case CommandCapitalized:
		if name == "" {
			return name
		}
		return strings.ToUpper(name[:1]) + name[1:]
	case CommandLongForm:
		return name
	default: // CommandLowercase
		return strings.ToLower(name)
	}
}

// parseCommand recognizes a command word at the parser's cursor: an
// identifier that matches a known spelling, case-insensitively. The parser
// tries it just before falling back to a plain symbol, so a recognized
// command wins over an otherwise-identical-looking symbol.
func parseCommand(p *Parser) (Address, bool, error) {
	start := p.pos
	if !isSymbolStart(p.peek()) {
		// Operators like +, -, *, / are single characters, not identifiers.
		for _, op := range []string{"+", "-", "*", "/"} {
			if strings.HasPrefix(p.text[p.pos:], op) {
				id := p.rt.names.byName[op]
				p.pos += len(op)
				addr, err := allocCommand(p.rt, id)
				return addr, err == nil, err
			}
		}
		return NullAddr, false, nil
	}
	p.pos++
	for p.pos < len(p.text) && isSymbolCont(p.text[p.pos]) {
		p.pos++
	}
	word := p.text[start:p.pos]
	id, ok := p.rt.names.lookup(word)
	if !ok {
		p.pos = start
		return NullAddr, false, nil
	}
	addr, err := allocCommand(p.rt, id)
	if err != nil {
		return NullAddr, true, err
	}
	return addr, true, nil
}

// allocCommand allocates a tag-only object for the given command id.
func allocCommand(rt *Runtime, id TypeID) (Address, error) {
	addr, _ := rt.arena.Allocate(rt.gc, 0, id)
	if addr == NullAddr {
		return NullAddr, rt.fail(ErrOutOfMemoryKind, "out of memory allocating command")
	}
	return addr, nil
}
