package preg

import "github.com/joshuapare/pregkit/pkg/types"

// Re-exported model types, so most callers only import this package.
type (
	RegType     = types.RegType
	Data        = types.Data
	DataKind    = types.DataKind
	Instruction = types.Instruction
	Body        = types.Body
	File        = types.File
)

// Registry value types.
const (
	REG_NONE                       = types.REG_NONE
	REG_SZ                         = types.REG_SZ
	REG_EXPAND_SZ                  = types.REG_EXPAND_SZ
	REG_BINARY                     = types.REG_BINARY
	REG_DWORD_LITTLE_ENDIAN        = types.REG_DWORD_LITTLE_ENDIAN
	REG_DWORD_BIG_ENDIAN           = types.REG_DWORD_BIG_ENDIAN
	REG_LINK                       = types.REG_LINK
	REG_MULTI_SZ                   = types.REG_MULTI_SZ
	REG_RESOURCE_LIST              = types.REG_RESOURCE_LIST
	REG_FULL_RESOURCE_DESCRIPTOR   = types.REG_FULL_RESOURCE_DESCRIPTOR
	REG_RESOURCE_REQUIREMENTS_LIST = types.REG_RESOURCE_REQUIREMENTS_LIST
	REG_QWORD_LITTLE_ENDIAN        = types.REG_QWORD_LITTLE_ENDIAN
	REG_QWORD_BIG_ENDIAN           = types.REG_QWORD_BIG_ENDIAN
)

// Payload kinds.
const (
	KindNone    = types.KindNone
	KindString  = types.KindString
	KindStrings = types.KindStrings
	KindBinary  = types.KindBinary
	KindDword   = types.KindDword
	KindQword   = types.KindQword
)

// Error sentinels; match with errors.Is.
var (
	ErrShortRead    = types.ErrShortRead
	ErrWrite        = types.ErrWrite
	ErrBadHeader    = types.ErrBadHeader
	ErrBadDelimiter = types.ErrBadDelimiter
	ErrBadKey       = types.ErrBadKey
	ErrBadValue     = types.ErrBadValue
	ErrBadType      = types.ErrBadType
	ErrBadSize      = types.ErrBadSize
	ErrEncoding     = types.ErrEncoding
)
