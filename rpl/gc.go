package rpl

// GC implements the compacting, single-pass collector. It
// walks the live heap [Globals, Temporaries) in address order, keeps
// objects reachable from a data-stack slot or a registered safe pointer,
// and moves them down to close any gaps left by dead objects -- the exact
// algorithm of the original runtime::gc()/runtime::move() in runtime.cc,
// translated from raw object* pointer arithmetic to Address offsets.
type GC struct {
	rt *Runtime
}

// newGC builds a collector bound to rt's arena and roots.
func newGC(rt *Runtime) *GC { return &GC{rt: rt} }

// Collect runs one compacting pass and returns the number of bytes
// recycled (dead space reclaimed). Safe to call at any time; it is also
// invoked automatically by Arena.Allocate when space is low.
func (gc *GC) Collect() int {
	rt := gc.rt
	a := rt.arena

	first, last := a.GlobalsRange()
	// An open editor buffer occupies the top a.editing bytes of this range;
	// it holds raw text, not objects, so the walk stops below it.
	last -= a.editing
	free := first
	recycled := 0

	rt.logf("gc", "collection start available=%d range=[%d,%d)", a.Available(), first, last)

	for obj := first; obj < last; {
		next := a.Skip(obj)
		if next <= obj {
			// Defensive: a malformed/zero-size tag must not spin forever.
			break
		}

		if gc.isLive(obj, next) {
			gc.move(obj, next, free)
			free += next - obj
		} else {
			recycled += int(next - obj)
		}

		obj = next
	}

	// Shift any open editor buffer down by the same amount live data did
	// NOT shift (i.e. by the total recycled count), matching the original's
	// "move the command line" step in runtime::gc().
	if a.editing != 0 {
		editStart := last
		newStart := editStart - Address(recycled)
		copy(a.buf[newStart:newStart+a.editing], a.buf[editStart:editStart+a.editing])
	}

	a.temporaries = free + a.editing
	rt.logf("gc", "collection done recycled=%d available=%d", recycled, a.Available())
	return recycled
}

// isLive reports whether any data-stack slot or registered safe pointer
// currently addresses a byte inside [obj, next).
func (gc *GC) isLive(obj, next Address) bool {
	a := gc.rt.arena
	for s := a.stackTop; s < a.stackBottom; s += slotSize {
		if v := a.readSlot(s); within(v, obj, next) {
			return true
		}
	}
	for s := a.returnTop; s < a.highMem; s += slotSize {
		if v := a.readSlot(s); within(v, obj, next) {
			return true
		}
	}
	live := false
	gc.rt.safePointers(func(sp *SafePointer) {
		if within(sp.addr, obj, next) {
			live = true
		}
	})
	return live
}

// move relocates the byte range [first, last) to dst via memmove-by-copy
// (safe because dst <= first always, compaction only ever moves data
// downward) and adjusts every live reference whose value falls inside the
// moved range by the resulting delta -- the same bookkeeping as
// runtime::move() in runtime.cc.
func (gc *GC) move(first, last, dst Address) {
	delta := int64(dst) - int64(first)
	if delta == 0 {
		return
	}

	a := gc.rt.arena
	copy(a.buf[dst:dst+(last-first)], a.buf[first:last])

	adjust := func(at Address) {
		v := a.readSlot(at)
		if within(v, first, last) {
			a.writeSlot(at, Address(int64(v)+delta))
		}
	}
	for s := a.stackTop; s < a.stackBottom; s += slotSize {
		adjust(s)
	}
	for s := a.returnTop; s < a.highMem; s += slotSize {
		adjust(s)
	}
	gc.rt.safePointers(func(sp *SafePointer) {
		if within(sp.addr, first, last) {
			sp.addr = Address(int64(sp.addr) + delta)
		}
	})
}
