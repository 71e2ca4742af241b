package rpl

// This file implements the stack manager: the data stack
// (Push/Pop/Top/StackAt/Depth) and the return stack (Call/Ret), both
// layered directly on the Arena's word-aligned region above Temporaries.
// Operations report failures through the error taxonomy rather than
// panicking.

// Push decrements StackTop and writes addr. Fails with out-of-memory if
// doing so would violate the red zone, even after a collection attempt.
func (rt *Runtime) Push(addr Address) error {
	a := rt.arena
	if Address(slotSize) > Address(a.Available()) {
		rt.gc.Collect()
		if Address(slotSize) > Address(a.Available()) {
			return newError(ErrOutOfMemoryKind, "cannot push: stack would collide with temporaries")
		}
	}
	a.stackTop -= slotSize
	a.writeSlot(a.stackTop, addr)
	return nil
}

// Pop returns the object at StackTop and reclaims its slot. Fails with
// too-few-arguments when the stack is empty.
func (rt *Runtime) Pop() (Address, error) {
	a := rt.arena
	if a.stackTop >= a.stackBottom {
		return NullAddr, newError(ErrTooFewArguments, "not enough arguments")
	}
	v := a.readSlot(a.stackTop)
	a.stackTop += slotSize
	return v, nil
}

// Top returns the object at stack level 0, or NullAddr if the stack is
// empty.
func (rt *Runtime) Top() Address {
	a := rt.arena
	if a.stackTop >= a.stackBottom {
		return NullAddr
	}
	return a.readSlot(a.stackTop)
}

// SetTop replaces the object at stack level 0. Fails if the stack is empty.
func (rt *Runtime) SetTop(addr Address) error {
	a := rt.arena
	if a.stackTop >= a.stackBottom {
		return newError(ErrTooFewArguments, "cannot replace empty stack")
	}
	a.writeSlot(a.stackTop, addr)
	return nil
}

// StackAt returns the object at the k-th slot from the top (0 = Top).
// Fails with insufficient-stack-depth if k >= Depth().
func (rt *Runtime) StackAt(k int) (Address, error) {
	a := rt.arena
	if k < 0 || k >= a.Depth() {
		return NullAddr, newError(ErrInsufficientStackDepth, "insufficient stack depth for level %d", k)
	}
	return a.readSlot(a.slotAddr(k)), nil
}

// SetStackAt writes the object at the k-th slot from the top.
func (rt *Runtime) SetStackAt(k int, addr Address) error {
	a := rt.arena
	if k < 0 || k >= a.Depth() {
		return newError(ErrInsufficientStackDepth, "insufficient stack depth for level %d", k)
	}
	a.writeSlot(a.slotAddr(k), addr)
	return nil
}

// Depth returns the current data stack depth.
func (rt *Runtime) Depth() int { return rt.arena.Depth() }

// Call pushes the currently executing code reference onto the return
// stack, sets Code to callee, and shifts the data-stack window down by one
// slot to preserve alignment. This intentionally drops the original
// source's per-call data-stack rotation loop, which the original treats
// as a fence-post bug: the window shifts, but no data-stack bytes are
// copied.
func (rt *Runtime) Call(callee Address) error {
	a := rt.arena
	if Address(slotSize) > Address(a.highMem-a.returnTop) {
		return newError(ErrOutOfMemoryKind, "too many recursive calls")
	}
	a.stackTop -= slotSize
	a.stackBottom -= slotSize
	a.returnTop -= slotSize
	a.writeSlot(a.returnTop, rt.code)
	rt.code = callee
	return nil
}

// Ret pops the return stack into Code and undoes Call's window shift.
// Fails with cannot-return if the return stack is empty.
func (rt *Runtime) Ret() error {
	a := rt.arena
	if a.returnTop >= a.highMem {
		return newError(ErrCannotReturn, "cannot return without a caller")
	}
	rt.code = a.readSlot(a.returnTop)
	a.returnTop += slotSize
	a.stackTop += slotSize
	a.stackBottom += slotSize
	return nil
}
