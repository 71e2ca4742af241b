package rpl

import "unicode/utf8"

// Editor implements the mutable command-line text buffer: a
// byte range occupying the top of the Temporaries region, directly below
// the Temporaries cursor, while the user is composing a line, tracked
// separately from ordinary temporaries so the
// collector can shift it as a block (see GC.Collect's "open editor buffer"
// step, grounded in runtime.cc's "move the command line").

// EditorOpen reports whether a command-line edit buffer is currently open.
func (rt *Runtime) EditorOpen() bool { return rt.arena.editing != 0 }

// EditorInsert appends bytes to the open editor buffer, opening one at the
// Temporaries cursor if none is open yet.
func (rt *Runtime) EditorInsert(s string) error {
	a := rt.arena
	need := len(s)
	if a.Available() < need {
		rt.gc.Collect()
		if a.Available() < need {
			return rt.fail(ErrOutOfMemoryKind, "editor buffer out of memory")
		}
	}
	start := a.temporaries
	copy(a.buf[start:start+Address(need)], s)
	a.temporaries += Address(need)
	a.editing += Address(need)
	return nil
}

// EditorText returns the current (uncommitted) editor buffer contents.
func (rt *Runtime) EditorText() string {
	a := rt.arena
	start := a.temporaries - a.editing
	return string(a.buf[start:a.temporaries])
}

// EditorBackspace removes the last rune of the open editor buffer, if any,
// shrinking it by that rune's encoded length. Reports whether anything was
// removed.
func (rt *Runtime) EditorBackspace() bool {
	a := rt.arena
	if a.editing == 0 {
		return false
	}
	start := a.temporaries - a.editing
	_, size := utf8.DecodeLastRuneInString(string(a.buf[start:a.temporaries]))
	if size == 0 {
		return false
	}
	a.temporaries -= Address(size)
	a.editing -= Address(size)
	return true
}

// EditorClear discards the open editor buffer without committing it.
func (rt *Runtime) EditorClear() {
	a := rt.arena
	a.temporaries -= a.editing
	a.editing = 0
}

// EditorClose wraps the open editor buffer in a text object:
// the buffer is given a string header (including the convenience
// NUL terminator for C-style consumers) and the
// Temporaries cursor advances past it. Returns the new text object's
// address, or NullAddr if there was no open buffer.
func (rt *Runtime) EditorClose() (Address, error) {
	a := rt.arena
	if a.editing == 0 {
		return NullAddr, nil
	}

	n := int(a.editing)
	hdrSize := sizeTypeID(IDText) + sizeUvarint(uint64(n+1))
	need := hdrSize + 1 // header plus the NUL terminator
	if a.Available() < need {
		rt.gc.Collect()
		if a.Available() < need {
			return NullAddr, rt.fail(ErrOutOfMemoryKind, "cannot close editor: out of memory")
		}
	}

	edStart := a.temporaries - a.editing
	strStart := edStart + Address(hdrSize)
	copy(a.buf[strStart:strStart+Address(n)], a.buf[edStart:edStart+Address(n)])
	a.buf[strStart+Address(n)] = 0 // NUL terminator for C-style consumers

	objAddr := edStart
	m := putTypeID(a.buf[objAddr:], IDText)
	m += putUvarint(a.buf[objAddr+Address(m):], uint64(n+1))
	_ = m

	a.temporaries = strStart + Address(n) + 1
	a.editing = 0
	return objAddr, nil
}
