package rpl

// typeOps is the five-operation record assigned to every type
// id. It is the only polymorphic surface in the object model: there is no
// inheritance or virtual dispatch, just a table indexed by TypeID, built up
// once at package init time the way runtime.h's per-class handler tables are
// built at compile time.
type typeOps struct {
	// size returns the number of payload bytes (NOT including the LEB128
	// tag already consumed) that the object occupies, given the address of
	// its payload.
	size func(a *Arena, payload Address) int

	// parse attempts to parse starting at the parser's cursor. It returns
	// ok=false (without consuming input) if this type does not apply here.
	parse func(p *Parser) (addr Address, ok bool, err error)

	// render appends obj's textual form to r.
	render func(r *Renderer, a *Arena, obj Address)

	// evaluate produces obj's effect on the stack.
	evaluate func(rt *Runtime, obj Address) error

	// execute is like evaluate but distinguished for containers
	// (programs/blocks): evaluate pushes, execute iterates.
	// Left nil for types where evaluate and execute coincide.
	execute func(rt *Runtime, obj Address) error
}

// registry is the static per-id operation table. Indexing is by TypeID, the
// same closed enumeration used for the on-disk tag, so there is no map
// lookup or heap allocation on the dispatch path.
var registry [int(idCommandEnd)]*typeOps

// register installs ops for id. Called from each type file's init().
func register(id TypeID, ops typeOps) {
	registry[id] = &ops
}

// opsFor returns the dispatch table entry for id, or nil if id is unknown
// (a corrupt or foreign tag).
func opsFor(id TypeID) *typeOps {
	if int(id) < 0 || int(id) >= len(registry) {
		return nil
	}
	return registry[id]
}

// Execute runs obj's execute operation if it has one, otherwise falls back
// to evaluate -- this is the "evaluate pushes, execute iterates" split of
// generalized to every type (most types have no execute
// override and simply behave like evaluate when executed directly).
func execute(rt *Runtime, obj Address) error {
	id := rt.arena.TypeOf(obj)
	ops := opsFor(id)
	if ops == nil {
		return rt.fail(ErrBadArgumentType, "unknown object type %d", id)
	}
	if ops.execute != nil {
		return ops.execute(rt, obj)
	}
	return ops.evaluate(rt, obj)
}
