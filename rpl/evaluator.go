package rpl

// evaluator.go implements the two entry points external collaborators
// drive the engine through: Evaluate (advance by interpreting one object)
// and Execute (the programs/blocks-aware "run this" used internally by
// container execution and by the top-level key handler when running a
// parsed program immediately rather than leaving it on the stack).
//
// Ordinary command failures come back as plain errors from here; only the
// rare internal faults reached through raise() (errors.go) unwind via
// panic, and errFaultBoundary converts those back to a plain error at this
// same boundary. internal/panicerr is not used here; it wraps the
// top-level run in cmd/db48x instead.

// Evaluate dispatches obj to its registered evaluate operation: passive
// data pushes itself, commands perform their action, programs push
// themselves, blocks execute inline.
func (rt *Runtime) Evaluate(obj Address) error {
	return errFaultBoundary(func() error {
		id := rt.arena.TypeOf(obj)
		ops := opsFor(id)
		if ops == nil {
			return rt.fail(ErrBadArgumentType, "unknown object type %d", id)
		}
		return ops.evaluate(rt, obj)
	})
}

// Execute runs obj the way a top-level key handler runs a freshly parsed
// program: programs/blocks iterate their children, everything else behaves
// like Evaluate (dispatch.go's execute() with the fault boundary applied).
func (rt *Runtime) Execute(obj Address) error {
	return errFaultBoundary(func() error { return execute(rt, obj) })
}
