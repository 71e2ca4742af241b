package rpl

import "fmt"

// slotSize is the width in bytes of one data/return stack slot. Slots hold
// an Address and are word-aligned above Temporaries.
const slotSize = 4

// redZone is the minimum gap that must remain between Temporaries and
// StackTop at all times. Matches runtime.h's redzone = 8.
const redZone = 8

// Arena is the single contiguous byte buffer,
// partitioned into Globals, Temporaries, a downward-growing data stack and
// a downward-growing return stack above it.
//
//	Globals <= Temporaries <= StackTop <= StackBottom <= ReturnTop <= HighMem
type Arena struct {
	buf []byte

	globalsBase Address // low end of Globals, always 1 (0 is NullAddr)
	globals     Address // Globals cursor: Globals..globals is live global data
	temporaries Address // Temporaries cursor: globals..temporaries is live temp data
	stackTop    Address // data stack top (grows down)
	stackBottom Address // data stack bottom, i.e. high-water mark
	returnTop   Address // return stack top (grows down), above stackBottom
	highMem     Address // one past the last usable byte

	editing Address // 0 if no editor buffer open, else its length in bytes
}

// ErrOutOfMemory is returned by operations that could not find room even
// after running the collector.
var ErrOutOfMemory = fmt.Errorf("out of memory")

// NewArena binds a runtime to a caller-provided fixed-size buffer, as per
// runtime_init's contract. size must be large enough to hold the
// word-aligned stack/return-stack regions plus the red zone.
func NewArena(memory []byte) *Arena {
	a := &Arena{buf: memory}
	a.reset()
	return a
}

func (a *Arena) reset() {
	n := Address(len(a.buf))
	a.globalsBase = 1
	a.globals = a.globalsBase
	a.temporaries = a.globalsBase
	a.highMem = n
	a.returnTop = n
	a.stackBottom = n
	a.stackTop = n
}

// Size returns the total capacity of the arena's backing buffer.
func (a *Arena) Size() int { return len(a.buf) }

// Available returns the number of bytes that may currently be allocated to
// a new temporary without violating the red zone.
func (a *Arena) Available() int {
	avail := int(a.stackTop) - int(a.temporaries) - redZone
	if avail < 0 {
		return 0
	}
	return avail
}

// bytes returns the byte range [lo, hi) of the backing buffer. Callers must
// ensure lo <= hi <= len(buf).
func (a *Arena) bytes(lo, hi Address) []byte { return a.buf[lo:hi] }

// Allocate reserves size bytes at the current Temporaries cursor and writes
// id's LEB128 tag as the first bytes of the returned object. It returns
// NullAddr if there is not enough room even after a collection.
// payloadSize is the number of payload bytes the caller still needs to fill in
// after the tag.
func (a *Arena) Allocate(gc *GC, payloadSize int, id TypeID) (addr Address, payload []byte) {
	tagSize := sizeTypeID(id)
	total := tagSize + payloadSize

	if a.Available() < total {
		if gc != nil {
			gc.Collect()
		}
		if a.Available() < total {
			return NullAddr, nil
		}
	}

	addr = a.temporaries
	end := addr + Address(total)
	buf := a.bytes(addr, end)
	n := putTypeID(buf, id)
	a.temporaries = end
	return addr, buf[n:]
}

// Dispose reclaims a temporary. Disposal is only ever
// cheap for the most recently allocated object: if obj sits immediately
// below the Temporaries cursor, the cursor rewinds over it; otherwise it is
// left as dead space, recovered at the next collection.
func (a *Arena) Dispose(obj Address) {
	if a.Skip(obj) == a.temporaries {
		a.temporaries = obj
	}
	// else: leave as dead space, collected later.
}

// Skip returns the address immediately following obj, i.e. obj's total
// encoded length added to its own address.
func (a *Arena) Skip(obj Address) Address {
	return obj + Address(a.ObjectSize(obj))
}

// ObjectSize returns the number of bytes obj occupies: its LEB128 tag plus
// whatever the per-type size routine reports for the payload.
func (a *Arena) ObjectSize(obj Address) int {
	id, tagLen := a.readTag(obj)
	ops := opsFor(id)
	if ops == nil {
		return tagLen
	}
	return tagLen + ops.size(a, obj+Address(tagLen))
}

// readTag reads the LEB128 type id at obj and returns it with its encoded
// length in bytes.
func (a *Arena) readTag(obj Address) (TypeID, int) {
	id, n, ok := getTypeID(a.buf[obj:])
	if !ok {
		return IDInvalid, 0
	}
	return id, n
}

// TypeOf returns the type id stored at obj.
func (a *Arena) TypeOf(obj Address) TypeID {
	id, _ := a.readTag(obj)
	return id
}

// Payload returns the byte range of obj's payload, i.e. everything after its
// LEB128 tag.
func (a *Arena) Payload(obj Address) []byte {
	_, n := a.readTag(obj)
	return a.buf[obj+Address(n) : a.Skip(obj)]
}

// GlobalsRange returns the current [Globals, Temporaries) live object range.
func (a *Arena) GlobalsRange() (lo, hi Address) { return a.globalsBase, a.temporaries }

// Depth returns the current data stack depth.
func (a *Arena) Depth() int { return int(a.stackBottom-a.stackTop) / slotSize }

func (a *Arena) slotAddr(k int) Address { return a.stackTop + Address(k*slotSize) }

func (a *Arena) readSlot(at Address) Address {
	return Address(le.Uint32(a.buf[at : at+slotSize]))
}

func (a *Arena) writeSlot(at Address, v Address) {
	le.PutUint32(a.buf[at:at+slotSize], uint32(v))
}
