package rpl

import "fmt"

// ErrKind enumerates the error taxonomy. Every fallible
// runtime operation reports one of these.
type ErrKind int

const (
	ErrNone ErrKind = iota
	ErrOutOfMemoryKind
	ErrTooFewArguments
	ErrInsufficientStackDepth
	ErrBadArgumentType
	ErrBadArgumentValue
	ErrSyntax
	ErrInterrupted
	ErrDivideByZero
	ErrUndefinedResult
	ErrOverflow
	ErrCannotReturn
)

var errKindNames = [...]string{
	ErrNone:                   "ok",
	ErrOutOfMemoryKind:        "out of memory",
	ErrTooFewArguments:        "too few arguments",
	ErrInsufficientStackDepth: "insufficient stack depth",
	ErrBadArgumentType:        "bad argument type",
	ErrBadArgumentValue:       "bad argument value",
	ErrSyntax:                 "syntax error",
	ErrInterrupted:            "interrupted",
	ErrDivideByZero:           "divide by zero",
	ErrUndefinedResult:        "undefined result",
	ErrOverflow:               "overflow",
	ErrCannotReturn:           "cannot return",
}

func (k ErrKind) String() string {
	if int(k) >= 0 && int(k) < len(errKindNames) {
		return errKindNames[k]
	}
	return "unknown error"
}

// RuntimeError is the value type of the runtime's error slot: a kind
// drawn from the closed taxonomy plus a human-readable message. Propagation
// policy: setting the error slot halts the current program, but leaves
// partial results on the stack; the key handler surfaces and
// clears it.
type RuntimeError struct {
	Kind    ErrKind
	Message string
}

func (e *RuntimeError) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// newError builds a *RuntimeError, pairing a reason with a message, the
// way the original's halt() call sites always do.
func newError(kind ErrKind, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// fault is the internal panic payload used to unwind straight to the
// nearest Evaluate boundary when an error happens deep inside allocation or
// dispatch plumbing that has no convenient error return (e.g. GC-driven
// allocation failure reached from an arbitrary object constructor). This is
// the same shape as the original's haltError/panic(haltError{err}) escape
// hatch: ordinary command failures still use
// plain returned errors, and only these deep, rare faults use panic/recover.
type fault struct{ err *RuntimeError }

// raise unwinds to the nearest Evaluate/Execute fault boundary
// (errFaultBoundary in runtime.go) with err.
func raise(err *RuntimeError) { panic(fault{err}) }
