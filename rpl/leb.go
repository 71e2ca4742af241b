package rpl

import "encoding/binary"

// le is the byte order used for the word-aligned stack/return-stack slots
// above Temporaries; LEB128 tags below Temporaries are
// endian-agnostic by construction.
var le = binary.LittleEndian

// Every object begins with a LEB128-encoded type id. Go's
// encoding/binary already implements unsigned LEB128 byte-for-byte via
// Uvarint/PutUvarint (see runtime.cc's leb128/leb128size, which this
// wraps); there is no third-party varint codec anywhere in the retrieved
// example pack, so reaching for one here would mean re-implementing what
// the standard library already provides bit-exactly.

// maxTypeIDLen bounds how many bytes a TypeID's LEB128 encoding can occupy.
// The id space is small (a few hundred entries at most), so this is a
// generous, fixed upper bound used for read-ahead safety checks.
const maxTypeIDLen = 4

// putTypeID writes id's LEB128 encoding to buf and returns the number of
// bytes written.
func putTypeID(buf []byte, id TypeID) int {
	return binary.PutUvarint(buf, uint64(id))
}

// sizeTypeID returns the number of bytes id's LEB128 encoding occupies.
func sizeTypeID(id TypeID) int {
	var buf [maxTypeIDLen]byte
	return putTypeID(buf[:], id)
}

// getTypeID reads a LEB128-encoded TypeID from buf, returning the id and the
// number of bytes consumed. ok is false if buf did not contain a complete
// encoding.
func getTypeID(buf []byte) (id TypeID, n int, ok bool) {
	v, sz := binary.Uvarint(buf)
	if sz <= 0 {
		return 0, 0, false
	}
	return TypeID(v), sz, true
}

// putUvarint writes v's LEB128 encoding to buf and returns bytes written.
func putUvarint(buf []byte, v uint64) int { return binary.PutUvarint(buf, v) }

// sizeUvarint returns the number of bytes v's LEB128 encoding occupies.
func sizeUvarint(v uint64) int {
	var buf [binary.MaxVarintLen64]byte
	return binary.PutUvarint(buf[:], v)
}

// getUvarint reads a LEB128-encoded uint64 from buf.
func getUvarint(buf []byte) (v uint64, n int, ok bool) {
	v, sz := binary.Uvarint(buf)
	if sz <= 0 {
		return 0, 0, false
	}
	return v, sz, true
}

// zigzag encodes a signed integer so small negative and positive values
// both produce short varints (used for the decimal object's exponent).
func zigzagEncode(v int64) uint64 { return uint64(v<<1) ^ uint64(v>>63) }
func zigzagDecode(v uint64) int64 { return int64(v>>1) ^ -int64(v&1) }
