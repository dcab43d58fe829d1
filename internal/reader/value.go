package reader

import (
	"fmt"
	"strings"

	"github.com/joshuapare/pregkit/internal/buf"
	"github.com/joshuapare/pregkit/internal/format"
	"github.com/joshuapare/pregkit/pkg/types"
)

// readValueName matches a possibly empty run of characters in [0x20,0x7E]
// terminated by NUL16, capped at MaxValueNameLen code units. Unlike key
// segments, the backslash is an ordinary value character.
func (r *Reader) readValueName() (string, error) {
	var sb strings.Builder
	for {
		u, err := r.readUnit()
		if err != nil {
			return "", err
		}
		if u == 0 {
			return sb.String(), nil
		}
		if u < types.MinKeyChar || u > types.MaxKeyChar {
			return "", fmt.Errorf("illegal value character %#04x: %w", u, types.ErrBadValue)
		}
		if sb.Len() == types.MaxValueNameLen {
			return "", fmt.Errorf("value name exceeds %d characters: %w",
				types.MaxValueNameLen, types.ErrBadValue)
		}
		sb.WriteByte(byte(u))
	}
}

// readData reads exactly size payload bytes and interprets them under typ.
// Width constraints are enforced before any payload byte is consumed.
func (r *Reader) readData(typ types.RegType, size uint32) (types.Data, error) {
	switch typ.Kind() {
	case types.KindDword:
		if size != format.DWORDSize {
			return types.Data{}, fmt.Errorf("%s payload size %d: %w", typ, size, types.ErrBadSize)
		}
	case types.KindQword:
		if size != format.QWORDSize {
			return types.Data{}, fmt.Errorf("%s payload size %d: %w", typ, size, types.ErrBadSize)
		}
	case types.KindString, types.KindStrings:
		if size < format.MinStringBlockSize || size%format.CodeUnitSize != 0 {
			return types.Data{}, fmt.Errorf("%s payload size %d: %w", typ, size, types.ErrBadSize)
		}
	case types.KindBinary:
		// Any size, zero included.
	}

	block, err := r.sc.ReadN(size)
	if err != nil {
		return types.Data{}, err
	}

	switch typ {
	case types.REG_SZ, types.REG_EXPAND_SZ, types.REG_LINK:
		s, err := r.tr.DecodeString(block)
		if err != nil {
			return types.Data{}, err
		}
		return types.StringData(s), nil
	case types.REG_MULTI_SZ, types.REG_RESOURCE_LIST,
		types.REG_FULL_RESOURCE_DESCRIPTOR, types.REG_RESOURCE_REQUIREMENTS_LIST:
		list, err := r.tr.DecodeMultiString(block)
		if err != nil {
			return types.Data{}, err
		}
		return types.StringsData(list), nil
	case types.REG_BINARY:
		return types.BinaryData(block), nil
	case types.REG_DWORD_LITTLE_ENDIAN:
		return types.DwordData(buf.U32LE(block)), nil
	case types.REG_DWORD_BIG_ENDIAN:
		return types.DwordData(buf.U32BE(block)), nil
	case types.REG_QWORD_LITTLE_ENDIAN:
		return types.QwordData(buf.U64LE(block)), nil
	case types.REG_QWORD_BIG_ENDIAN:
		return types.QwordData(buf.U64BE(block)), nil
	default:
		return types.Data{}, fmt.Errorf("type tag %d: %w", typ, types.ErrBadType)
	}
}
