package rpl

import (
	"errors"
	"io"

	"github.com/camillew/db48x-core/internal/logio"
)

// Runtime is the process-wide handle passed explicitly to every operation
// rather than kept as a hidden singleton: it owns the arena, the error
// slot, the settings record, and the editor buffer state.
type Runtime struct {
	arena *Arena
	gc    *GC

	code   Address // currently executing code reference
	gcSafe *SafePointer

	settings Settings
	err      *RuntimeError

	log *logio.Logger // nil-safe: logf no-ops when unset

	interrupt func() bool // polled at suspension points during evaluation

	names *commandNames // command name <-> id table, see command.go

	globalTable []globalBinding // name -> bound value, see globals.go
}

// RuntimeOption configures a Runtime at construction time, a functional-
// options pattern.
type RuntimeOption interface{ apply(rt *Runtime) }

type settingsOption Settings

func (o settingsOption) apply(rt *Runtime) { rt.settings = Settings(o) }

// WithSettings overrides the default settings record.
func WithSettings(s Settings) RuntimeOption { return settingsOption(s) }

type traceOption struct{ w io.Writer }

func (o traceOption) apply(rt *Runtime) {
	rt.log = &logio.Logger{}
	rt.log.SetOutput(writeNopCloser{o.w})
}

type writeNopCloser struct{ io.Writer }

func (writeNopCloser) Close() error { return nil }

// WithTrace enables leveled garbage-collection trace logging to w, built
// around internal/logio's leveled Logger.
func WithTrace(w io.Writer) RuntimeOption { return traceOption{w} }

type interruptOption struct{ f func() bool }

func (o interruptOption) apply(rt *Runtime) { rt.interrupt = o.f }

// WithInterruptSource installs the interruption poll function. The
// default always returns false (nothing ever interrupts).
func WithInterruptSource(f func() bool) RuntimeOption { return interruptOption{f} }

// NewRuntime binds a runtime to a caller-provided fixed-size buffer
// (runtime_init's contract), applying any options. This must be called
// once before any other operation, exactly as runtime_init's contract
// requires.
func NewRuntime(memory []byte, opts ...RuntimeOption) *Runtime {
	rt := &Runtime{
		arena:    NewArena(memory),
		settings: DefaultSettings(),
		names:    newCommandNames(),
	}
	rt.gc = newGC(rt)
	for _, opt := range opts {
		if opt != nil {
			opt.apply(rt)
		}
	}
	return rt
}

// Settings returns the runtime's current formatting/arithmetic configuration.
func (rt *Runtime) Settings() *Settings { return &rt.settings }

// Error returns the current error-slot contents, or nil if clear.
func (rt *Runtime) Error() *RuntimeError { return rt.err }

// ClearError clears the error slot; the key handler does this once the
// user has observed a reported error, per the error-slot propagation policy.
func (rt *Runtime) ClearError() { rt.err = nil }

// fail records err in the error slot and returns it, mirroring the
// original's runtime::error(message) two-channel model: an error slot plus
// a non-OK result code (here, the returned error itself is the result code).
func (rt *Runtime) fail(kind ErrKind, format string, args ...interface{}) error {
	e := newError(kind, format, args...)
	rt.err = e
	return e
}

// Interrupted reports whether the input queue has a pending EXIT key.
// Non-blocking.
func (rt *Runtime) Interrupted() bool {
	if rt.interrupt == nil {
		return false
	}
	return rt.interrupt()
}

// logf emits a leveled trace line if a logger is attached; a no-op
// otherwise (the default is to discard).
func (rt *Runtime) logf(level, mess string, args ...interface{}) {
	if rt.log == nil {
		return
	}
	rt.log.Printf(level, mess, args...)
}

// Collect forces an immediate garbage-collection pass, returning the
// number of bytes recycled.
func (rt *Runtime) Collect() int { return rt.gc.Collect() }

// Available returns the number of bytes free for new temporaries.
func (rt *Runtime) Available() int { return rt.arena.Available() }

// errFaultBoundary recovers a raise()d fault (see errors.go) into a plain
// returned error with a synchronous recover() in the calling goroutine, for
// the rare internal faults that unwind via panic rather than a normal error
// return. Any other panic value is re-raised.
func errFaultBoundary(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if flt, ok := r.(fault); ok {
				err = flt.err
				return
			}
			panic(r)
		}
	}()
	return f()
}

// IsRuntimeError reports whether err is (or wraps) a *RuntimeError of the
// given kind.
func IsRuntimeError(err error, kind ErrKind) bool {
	var re *RuntimeError
	if errors.As(err, &re) {
		return re.Kind == kind
	}
	return false
}
