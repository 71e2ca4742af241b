package rpl

import (
	"fmt"
	"io"
)

// DumpHeap writes a human-readable snapshot of the data stack and the live
// heap range [Globals, Temporaries) to w, one object per line: address,
// type id, and rendered form. Gated on trace logging being enabled (see
// WithTrace), mirroring the teacher's own debug dumper, which only ever
// ran behind a raised trace verbosity rather than on every collection.
// Grounded on dumper.go's vmDumper.dump: a stack section followed by a
// linear memory-region walk with section headers at cursor boundaries.
func (rt *Runtime) DumpHeap(w io.Writer) {
	if rt.log == nil {
		return
	}

	fmt.Fprintf(w, "# Runtime Dump\n")
	rt.dumpStack(w)
	rt.dumpHeap(w)
}

func (rt *Runtime) dumpStack(w io.Writer) {
	depth := rt.Depth()
	fmt.Fprintf(w, "  stack (depth=%d):\n", depth)
	for level := depth; level >= 1; level-- {
		addr, err := rt.StackAt(level - 1)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "    %d: @%d %s\n", level, addr, rt.Render(addr))
	}
}

func (rt *Runtime) dumpHeap(w io.Writer) {
	lo, hi := rt.arena.GlobalsRange()
	fmt.Fprintf(w, "  heap [%d,%d):\n", lo, hi)
	for addr := lo; addr < hi; {
		id := rt.arena.TypeOf(addr)
		size := rt.arena.ObjectSize(addr)
		fmt.Fprintf(w, "    @%d type=%d size=%d %s\n", addr, id, size, rt.Render(addr))
		addr += Address(size)
	}
}
