package rpl

// globals.go implements the named global directory: STO binds a name to an
// object, RCL looks it up, PURGE removes the binding. A bound value is kept
// alive for the life of the session by an always-registered safe pointer,
// generalizing the scoped safe-pointer root mechanism (safeptr.go) to a
// permanent root instead of a stack-scoped one.
type globalBinding struct {
	name string
	ptr  *SafePointer
}

func (rt *Runtime) lookupGlobal(name string) (Address, bool) {
	for _, b := range rt.globalTable {
		if b.name == name {
			return b.ptr.Get(), true
		}
	}
	return NullAddr, false
}

// storeGlobal binds name to addr, replacing any existing binding.
func (rt *Runtime) storeGlobal(name string, addr Address) {
	for i, b := range rt.globalTable {
		if b.name == name {
			b.ptr.Set(addr)
			rt.globalTable[i] = b
			return
		}
	}
	rt.globalTable = append(rt.globalTable, globalBinding{name: name, ptr: rt.NewSafePointer(addr)})
}

// purgeGlobal removes name's binding, if any.
func (rt *Runtime) purgeGlobal(name string) {
	for i, b := range rt.globalTable {
		if b.name == name {
			b.ptr.Release()
			rt.globalTable = append(rt.globalTable[:i], rt.globalTable[i+1:]...)
			return
		}
	}
}
