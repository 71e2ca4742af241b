package rpl

// commands_stack.go implements the stack-shuffling command family (DUP,
// DROP, SWAP, OVER, ROT) directly atop the stack manager's StackAt/Push/Pop
// primitives, plus the global-directory commands STO/RCL/PURGE.

func cmdDup(rt *Runtime, _ Address) error {
	top, err := rt.StackAt(0)
	if err != nil {
		return err
	}
	return rt.Push(top)
}

func cmdDrop(rt *Runtime, _ Address) error {
	_, err := rt.Pop()
	return err
}

func cmdSwap(rt *Runtime, _ Address) error {
	a, err := rt.StackAt(0)
	if err != nil {
		return err
	}
	b, err := rt.StackAt(1)
	if err != nil {
		return err
	}
	if err := rt.SetStackAt(0, b); err != nil {
		return err
	}
	return rt.SetStackAt(1, a)
}

func cmdOver(rt *Runtime, _ Address) error {
	second, err := rt.StackAt(1)
	if err != nil {
		return err
	}
	return rt.Push(second)
}

func cmdRot(rt *Runtime, _ Address) error {
	a, err := rt.StackAt(2) // third from top
	if err != nil {
		return err
	}
	b, err := rt.StackAt(1)
	if err != nil {
		return err
	}
	c, err := rt.StackAt(0)
	if err != nil {
		return err
	}
	if err := rt.SetStackAt(2, b); err != nil {
		return err
	}
	if err := rt.SetStackAt(1, c); err != nil {
		return err
	}
	return rt.SetStackAt(0, a)
}

// cmdStore implements "value name STO": bind name to value.
func cmdStore(rt *Runtime, _ Address) error {
	nameAddr, err := rt.Pop()
	if err != nil {
		return err
	}
	if rt.arena.TypeOf(nameAddr) != IDSymbol {
		return rt.fail(ErrBadArgumentType, "STO expects a name")
	}
	name := symbolName(rt.arena, nameAddr)

	valAddr, err := rt.Pop()
	if err != nil {
		return err
	}
	rt.storeGlobal(name, valAddr)
	return nil
}

// cmdRecall implements "name RCL": push the value bound to name.
func cmdRecall(rt *Runtime, _ Address) error {
	nameAddr, err := rt.Pop()
	if err != nil {
		return err
	}
	if rt.arena.TypeOf(nameAddr) != IDSymbol {
		return rt.fail(ErrBadArgumentType, "RCL expects a name")
	}
	name := symbolName(rt.arena, nameAddr)
	val, ok := rt.lookupGlobal(name)
	if !ok {
		return rt.fail(ErrBadArgumentValue, "undefined name %q", name)
	}
	return rt.Push(val)
}

// cmdPurge implements "name PURGE": unbind name.
func cmdPurge(rt *Runtime, _ Address) error {
	nameAddr, err := rt.Pop()
	if err != nil {
		return err
	}
	if rt.arena.TypeOf(nameAddr) != IDSymbol {
		return rt.fail(ErrBadArgumentType, "PURGE expects a name")
	}
	rt.purgeGlobal(symbolName(rt.arena, nameAddr))
	return nil
}
