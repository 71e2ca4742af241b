/*
Package rpl implements the core runtime object system of a stack-oriented,
programmable calculator engine patterned on HP-48/50 RPL.

It owns a single contiguous byte arena partitioned into four regions --
globals, temporaries, a data stack and a return stack -- and provides:

  - a packed tagged-object heap (Arena) with LEB128-encoded type ids,
  - a data/return stack manager (the Runtime's Push/Pop/StackAt and
    Call/Ret methods) layered on that arena,
  - a compacting, single-pass garbage collector (GC) that rewrites every
    live stack slot and every registered safe pointer when it moves an
    object,
  - a per-type dispatch table (size/parse/render/evaluate/execute) used by
    the parser, renderer and evaluator instead of any form of inheritance,
  - an RPL evaluator implementing program/block/list/command semantics and
    cooperative interruption.

Everything outside of this package -- key matrix scanning, LCD redraw,
menu rendering, on-device persistence and decimal-library bit-exactness --
is an external collaborator; rpl depends on none of it and exposes only
the entry points described in its Runtime type.
*/
package rpl
