package types

import "bytes"

// DataKind identifies the payload shape held by a Data value.
type DataKind int

const (
	KindNone    DataKind = iota // no payload (zero Data)
	KindString                  // UTF-8 text
	KindStrings                 // ordered list of UTF-8 text
	KindBinary                  // raw bytes
	KindDword                   // 32-bit unsigned integer
	KindQword                   // 64-bit unsigned integer
)

// Data is a tagged union over the five PReg payload shapes. Endianness is
// not part of the payload; it lives in the instruction's RegType. The zero
// Data has KindNone and matches no wire-legal type.
type Data struct {
	kind DataKind
	str  string
	list []string
	raw  []byte
	num  uint64
}

// StringData returns a Data holding UTF-8 text.
func StringData(s string) Data { return Data{kind: KindString, str: s} }

// StringsData returns a Data holding an ordered list of UTF-8 strings.
func StringsData(list []string) Data { return Data{kind: KindStrings, list: list} }

// BinaryData returns a Data holding raw bytes.
func BinaryData(b []byte) Data { return Data{kind: KindBinary, raw: b} }

// DwordData returns a Data holding a 32-bit unsigned integer.
func DwordData(v uint32) Data { return Data{kind: KindDword, num: uint64(v)} }

// QwordData returns a Data holding a 64-bit unsigned integer.
func QwordData(v uint64) Data { return Data{kind: KindQword, num: v} }

// Kind returns the active payload shape.
func (d Data) Kind() DataKind { return d.kind }

// String returns the text payload. ok is false when the kind differs.
func (d Data) String() (string, bool) { return d.str, d.kind == KindString }

// Strings returns the string-list payload. ok is false when the kind differs.
func (d Data) Strings() ([]string, bool) { return d.list, d.kind == KindStrings }

// Binary returns the raw-byte payload. ok is false when the kind differs.
func (d Data) Binary() ([]byte, bool) { return d.raw, d.kind == KindBinary }

// Dword returns the 32-bit payload. ok is false when the kind differs.
func (d Data) Dword() (uint32, bool) { return uint32(d.num), d.kind == KindDword }

// Qword returns the 64-bit payload. ok is false when the kind differs.
func (d Data) Qword() (uint64, bool) { return d.num, d.kind == KindQword }

// Equal reports structural equality: same kind, and bytewise for blobs,
// element-wise ordered for lists, numeric for integers.
func (d Data) Equal(other Data) bool {
	if d.kind != other.kind {
		return false
	}
	switch d.kind {
	case KindString:
		return d.str == other.str
	case KindStrings:
		if len(d.list) != len(other.list) {
			return false
		}
		for i := range d.list {
			if d.list[i] != other.list[i] {
				return false
			}
		}
		return true
	case KindBinary:
		return bytes.Equal(d.raw, other.raw)
	case KindDword, KindQword:
		return d.num == other.num
	default:
		return true
	}
}

// Instruction is one PReg record: a registry key path, a value name, a
// registry type and the typed payload. Type and Data must agree
// (Type.Kind() == Data.Kind()) for the instruction to be writable.
type Instruction struct {
	Key   string
	Value string
	Type  RegType
	Data  Data
}

// Equal reports equality of all four attributes.
func (in Instruction) Equal(other Instruction) bool {
	return in.Key == other.Key &&
		in.Value == other.Value &&
		in.Type == other.Type &&
		in.Data.Equal(other.Data)
}

// Body is an ordered sequence of instructions. Order is significant and is
// preserved verbatim by the codec.
type Body struct {
	Instructions []Instruction
}

// Len returns the number of instructions.
func (b *Body) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Instructions)
}

// Equal reports ordered element-wise equality.
func (b *Body) Equal(other *Body) bool {
	if (b == nil) != (other == nil) {
		return false
	}
	if b == nil {
		return true
	}
	if len(b.Instructions) != len(other.Instructions) {
		return false
	}
	for i := range b.Instructions {
		if !b.Instructions[i].Equal(other.Instructions[i]) {
			return false
		}
	}
	return true
}

// File is a policy document. A nil Body denotes the empty document: the
// writer emits nothing for it, not even a header.
type File struct {
	Body *Body
}

// Equal reports structural document equality.
func (f *File) Equal(other *File) bool {
	if (f == nil) != (other == nil) {
		return false
	}
	if f == nil {
		return true
	}
	return f.Body.Equal(other.Body)
}
