// Package testutil builds PReg wire fixtures for the codec tests.
package testutil

import "encoding/binary"

// Header is the 8-byte PReg file header used by fixtures.
func Header() []byte {
	return []byte{'P', 'R', 'e', 'g', 0x01, 0x00, 0x00, 0x00}
}

// Units encodes an ASCII string as UTF-16LE code units, without terminator.
func Units(s string) []byte {
	out := make([]byte, 0, 2*len(s))
	for i := 0; i < len(s); i++ {
		out = append(out, s[i], 0x00)
	}
	return out
}

// SZ encodes an ASCII string as a NUL16-terminated UTF-16LE block, the
// payload form of REG_SZ and friends.
func SZ(s string) []byte {
	return append(Units(s), 0x00, 0x00)
}

// MultiSZ encodes elements as NUL16-terminated strings closed by an extra
// NUL16, the payload form of REG_MULTI_SZ and the resource list types.
func MultiSZ(elems ...string) []byte {
	var out []byte
	for _, e := range elems {
		out = append(out, SZ(e)...)
	}
	return append(out, 0x00, 0x00)
}

// Instruction assembles one bracketed record from pre-encoded key path and
// value name (in-memory, ASCII) plus a raw payload.
func Instruction(key, value string, typ uint32, data []byte) []byte {
	var out []byte
	out = append(out, '[', 0x00)
	out = append(out, SZ(key)...)
	out = append(out, ';', 0x00)
	out = append(out, SZ(value)...)
	out = append(out, ';', 0x00)
	out = binary.LittleEndian.AppendUint32(out, typ)
	out = append(out, ';', 0x00)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(data)))
	out = append(out, ';', 0x00)
	out = append(out, data...)
	return append(out, ']', 0x00)
}

// File assembles a full document: header plus instructions.
func File(instructions ...[]byte) []byte {
	out := Header()
	for _, in := range instructions {
		out = append(out, in...)
	}
	return out
}
