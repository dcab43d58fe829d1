package preg

import "github.com/joshuapare/pregkit/pkg/types"

// Instruction constructors. Each keeps the type tag and the payload shape in
// lock-step so a built instruction always passes the writer's type/payload
// check. Key paths and value names are not checked here; the writer
// validates them.

// NewSZ builds a REG_SZ instruction.
func NewSZ(key, value, data string) Instruction {
	return Instruction{Key: key, Value: value, Type: REG_SZ, Data: types.StringData(data)}
}

// NewExpandSZ builds a REG_EXPAND_SZ instruction.
func NewExpandSZ(key, value, data string) Instruction {
	return Instruction{Key: key, Value: value, Type: REG_EXPAND_SZ, Data: types.StringData(data)}
}

// NewLink builds a REG_LINK instruction.
func NewLink(key, value, target string) Instruction {
	return Instruction{Key: key, Value: value, Type: REG_LINK, Data: types.StringData(target)}
}

// NewMultiSZ builds a REG_MULTI_SZ instruction.
func NewMultiSZ(key, value string, elems []string) Instruction {
	return Instruction{Key: key, Value: value, Type: REG_MULTI_SZ, Data: types.StringsData(elems)}
}

// NewBinary builds a REG_BINARY instruction.
func NewBinary(key, value string, data []byte) Instruction {
	return Instruction{Key: key, Value: value, Type: REG_BINARY, Data: types.BinaryData(data)}
}

// NewDwordLE builds a REG_DWORD_LITTLE_ENDIAN instruction.
func NewDwordLE(key, value string, v uint32) Instruction {
	return Instruction{Key: key, Value: value, Type: REG_DWORD_LITTLE_ENDIAN, Data: types.DwordData(v)}
}

// NewDwordBE builds a REG_DWORD_BIG_ENDIAN instruction.
func NewDwordBE(key, value string, v uint32) Instruction {
	return Instruction{Key: key, Value: value, Type: REG_DWORD_BIG_ENDIAN, Data: types.DwordData(v)}
}

// NewQwordLE builds a REG_QWORD_LITTLE_ENDIAN instruction.
func NewQwordLE(key, value string, v uint64) Instruction {
	return Instruction{Key: key, Value: value, Type: REG_QWORD_LITTLE_ENDIAN, Data: types.QwordData(v)}
}

// NewQwordBE builds a REG_QWORD_BIG_ENDIAN instruction.
func NewQwordBE(key, value string, v uint64) Instruction {
	return Instruction{Key: key, Value: value, Type: REG_QWORD_BIG_ENDIAN, Data: types.QwordData(v)}
}
