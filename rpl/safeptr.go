package rpl

// SafePointer is a scoped GC root.
// Constructing one registers its address for adjustment during compaction;
// Release unregisters it. Safe pointers must be released in LIFO order so
// that unlinking stays O(1) -- exactly runtime.h's gcptr, whose constructor
// pushes onto runtime::GCSafe and whose destructor unlinks itself.
type SafePointer struct {
	rt   *Runtime
	addr Address
	next *SafePointer
}

// NewSafePointer registers addr as a transient GC root and returns a handle
// that must be released (typically via defer) once the caller no longer
// needs addr protected across a possible collection.
func (rt *Runtime) NewSafePointer(addr Address) *SafePointer {
	sp := &SafePointer{rt: rt, addr: addr, next: rt.gcSafe}
	rt.gcSafe = sp
	return sp
}

// Get returns the safe pointer's current address, adjusted by any
// collections that have run since it was registered.
func (sp *SafePointer) Get() Address { return sp.addr }

// Set updates the address a safe pointer protects.
func (sp *SafePointer) Set(addr Address) { sp.addr = addr }

// Release unregisters sp. Safe pointers must be released LIFO: sp must be
// the most recently registered pointer still live on rt, matching gcptr's
// strictly-nested destructor order in the original.
func (sp *SafePointer) Release() {
	rt := sp.rt
	if rt.gcSafe == sp {
		rt.gcSafe = sp.next
		return
	}
	// Not LIFO: fall back to an O(n) unlink rather than corrupt the list.
	// The original documents this as a strict-nesting requirement; this
	// path only exists so a misuse doesn't leak or panic.
	for p := rt.gcSafe; p != nil; p = p.next {
		if p.next == sp {
			p.next = sp.next
			return
		}
	}
}

// safePointers walks the registered safe-pointer list, invoking f for each
// live one. Used by the collector to find extra roots beyond the stacks.
func (rt *Runtime) safePointers(f func(sp *SafePointer)) {
	for sp := rt.gcSafe; sp != nil; sp = sp.next {
		f(sp)
	}
}
