package rpl

// TypeID is the closed enumeration every object's LEB128-encoded tag is
// drawn from. Data types and commands share one id space, exactly as
// types.h/command.h do in the original: a command is just an object whose
// payload is empty and whose dispatch table entry runs code instead of
// exposing fields.
type TypeID uint16

const (
	IDInvalid TypeID = iota

	// Numeric data families.
	IDInteger        // non-negative int64 magnitude
	IDNegInteger     // negative int64, magnitude stored, sign implied by id
	IDBasedInteger   // #...b/#...o/#...d/#...h literal
	IDBignumPositive // arbitrary precision, non-negative
	IDBignumNegative // arbitrary precision, negative
	IDFraction       // reduced numerator/denominator pair
	IDDecimal        // mantissa+exponent decimal value

	// Textual / structural data families.
	IDSymbol
	IDText
	IDList
	IDProgram
	IDBlock

	// Complex number families.
	IDRectangular
	IDPolar

	idFirstCommand // marker: everything from here on is a command id
)

// Command ids. Each is its own TypeID with an empty payload. This is a
// representative subset of RPL's command set, enough to exercise
// arithmetic, stack shuffling, and global storage.
const (
	CmdEnter TypeID = idFirstCommand + iota // commits the command line; no-op once tokenized
	CmdAdd
	CmdSub
	CmdMul
	CmdDiv
	CmdNeg
	CmdInv
	CmdSqrt
	CmdSin
	CmdCos
	CmdTan
	CmdDup
	CmdDrop
	CmdSwap
	CmdOver
	CmdRot
	CmdImaginaryUnit
	CmdStore  // STO: bind name to value (supplemented, global directory)
	CmdRecall // RCL: push the value bound to name
	CmdPurge  // PURGE: unbind name

	idCommandEnd // marker: one past the last defined command id
)

// IsCommand reports whether id names a built-in command rather than a data
// object.
func (id TypeID) IsCommand() bool { return id >= idFirstCommand && id < idCommandEnd }
