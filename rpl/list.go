package rpl

// list.go implements IDList: a packed sequence of child objects delimited
// by `{ }` in surface syntax. Lists always evaluate by pushing themselves;
// unlike programs they never auto-execute, which is exactly what makes
// them usable as inert data (e.g. { A 1 3 }).
func init() {
	register(IDList, typeOps{
		size:     childSequenceSize,
		parse:    parseList,
		render:   renderSequence("{ ", " }"),
		evaluate: evaluatePushSelf,
	})
}

// childSequenceSize computes the total payload size of a composite object
// laid out as a LEB128 child count followed by that many packed child
// objects -- the shared framing for list, program, and block.
func childSequenceSize(a *Arena, payload Address) int {
	count, n := decodeMagnitude(a.buf[payload:])
	cur := payload + Address(n)
	total := n
	for i := uint64(0); i < count; i++ {
		sz := a.ObjectSize(cur)
		total += sz
		cur += Address(sz)
	}
	return total
}

// children decodes a composite object's count-prefixed child sequence into
// a slice of child addresses, in order.
func children(a *Arena, obj Address) []Address {
	_, tagLen := a.readTag(obj)
	payload := obj + Address(tagLen)
	count, n := decodeMagnitude(a.buf[payload:])
	cur := payload + Address(n)
	out := make([]Address, 0, count)
	for i := uint64(0); i < count; i++ {
		out = append(out, cur)
		cur = a.Skip(cur)
	}
	return out
}

func renderSequence(open, close string) func(r *Renderer, a *Arena, obj Address) {
	return func(r *Renderer, a *Arena, obj Address) {
		r.WriteString(open)
		kids := children(a, obj)
		for i, c := range kids {
			if i > 0 {
				r.WriteByte(' ')
			}
			renderObject(r, a, c)
		}
		r.WriteString(close)
	}
}

// allocProgram builds a composite object of the given container id (list,
// program, or block) embedding copies of items: a LEB128 count followed by
// each item's bytes in order. Every item is pinned with a safe pointer for
// the duration of the allocation -- items collected one at a time by a
// parse loop have no other root, and Allocate's own collection would
// otherwise be free to reclaim an earlier item while a later sibling is
// still being parsed.
func allocProgram(rt *Runtime, id TypeID, items []Address) (Address, error) {
	a := rt.arena

	sps := make([]*SafePointer, len(items))
	for i, it := range items {
		sps[i] = rt.NewSafePointer(it)
	}
	defer func() {
		for i := len(sps) - 1; i >= 0; i-- {
			sps[i].Release()
		}
	}()

	total := sizeUvarint(uint64(len(items)))
	for _, it := range items {
		total += a.ObjectSize(it)
	}

	addr, payload := a.Allocate(rt.gc, total, id)
	if addr == NullAddr {
		return NullAddr, rt.fail(ErrOutOfMemoryKind, "out of memory allocating container")
	}
	off := putUvarint(payload, uint64(len(items)))
	for _, sp := range sps {
		it := sp.Get()
		sz := a.ObjectSize(it)
		copy(payload[off:off+sz], a.buf[it:it+Address(sz)])
		off += sz
	}
	return addr, nil
}

func parseList(p *Parser) (Address, bool, error) {
	return parseDelimitedContainer(p, '{', '}', IDList)
}

func parseDelimitedContainer(p *Parser, open, closeCh byte, id TypeID) (Address, bool, error) {
	if p.peek() != open {
		return NullAddr, false, nil
	}
	start := p.pos
	p.pos++

	var pinned pinnedItems
	defer pinned.release()
	for {
		p.skipSpace()
		if p.peek() == closeCh {
			p.pos++
			break
		}
		if p.pos >= len(p.text) {
			p.pos = start
			return NullAddr, false, p.rt.fail(ErrSyntax, "unterminated container")
		}
		addr, ok, err := parseOne(p)
		if err != nil {
			return NullAddr, false, err
		}
		if !ok {
			p.pos = start
			return NullAddr, false, p.rt.fail(ErrSyntax, "syntax error inside container")
		}
		pinned.add(p.rt, addr)
	}

	addr, err := allocProgram(p.rt, id, pinned.addresses())
	if err != nil {
		return NullAddr, true, err
	}
	return addr, true, nil
}
