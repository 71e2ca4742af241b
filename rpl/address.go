package rpl

// Address is an offset into the arena's backing buffer. It stands in for
// the C++ original's raw object* pointers (runtime.h): since the arena is
// a single reallocation-free []byte, a uint32 offset is enough and survives
// compaction the same way a pointer would, just cheaper to rewrite in bulk.
type Address uint32

// NullAddr is the sentinel empty/absent address. Offset 0 is never handed
// out by the arena (the first byte of Globals is reserved) so it is safe
// to use as "no object" everywhere a stack slot or safe pointer can be empty.
const NullAddr Address = 0

// valid reports whether addr lies in the currently allocated Globals..Temporaries
// range, i.e. whether it addresses a live object rather than static/read-only
// storage or uninitialized arena space.
func (a *Arena) valid(addr Address) bool {
	return addr != NullAddr && addr >= a.globalsBase && addr < a.temporaries
}

// within reports whether addr lies in the half-open byte range [lo, hi).
func within(addr, lo, hi Address) bool {
	return addr >= lo && addr < hi
}
