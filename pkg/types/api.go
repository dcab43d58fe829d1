package types

import "fmt"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindShortRead ErrKind = iota // underlying stream ended early
	ErrKindWrite                    // underlying stream failed during emit
	ErrKindHeader                   // signature or version mismatch
	ErrKindDelimiter                // expected bracket or semicolon not present
	ErrKindKey                      // empty key segment or illegal key character
	ErrKindValue                    // value name too long or illegal character
	ErrKindType                     // type tag outside {1..12}
	ErrKindSize                     // declared size inconsistent with the type
	ErrKindEncoding                 // UTF-16LE transcoding failure or missing NUL
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels returned by the codec. Wrap with fmt.Errorf("...: %w", ...) to
// add production context; match with errors.Is.
var (
	// ErrShortRead indicates the stream ended before a production completed.
	ErrShortRead = &Error{Kind: ErrKindShortRead, Msg: "unexpected end of stream"}
	// ErrWrite indicates the output stream failed mid-emit.
	ErrWrite = &Error{Kind: ErrKindWrite, Msg: "stream write failed"}
	// ErrBadHeader indicates a missing PReg signature or wrong version word.
	ErrBadHeader = &Error{Kind: ErrKindHeader, Msg: "not a PReg file (bad header)"}
	// ErrBadDelimiter indicates a bracket or semicolon was expected.
	ErrBadDelimiter = &Error{Kind: ErrKindDelimiter, Msg: "delimiter expected"}
	// ErrBadKey indicates an empty key segment or an illegal key character.
	ErrBadKey = &Error{Kind: ErrKindKey, Msg: "malformed key path"}
	// ErrBadValue indicates a value name over 259 code units or out-of-class bytes.
	ErrBadValue = &Error{Kind: ErrKindValue, Msg: "malformed value name"}
	// ErrBadType indicates a type tag that is not wire-legal.
	ErrBadType = &Error{Kind: ErrKindType, Msg: "invalid registry value type"}
	// ErrBadSize indicates a declared size inconsistent with the value type.
	ErrBadSize = &Error{Kind: ErrKindSize, Msg: "invalid data size"}
	// ErrEncoding indicates a UTF-16LE transcoding failure or missing terminator.
	ErrEncoding = &Error{Kind: ErrKindEncoding, Msg: "text encoding error"}
)

// -----------------------------------------------------------------------------
// Registry value types
// -----------------------------------------------------------------------------

// RegType enumerates Windows registry value types as they appear in PReg
// instructions. (The numbers align with Windows definitions.)
type RegType uint32

const (
	REG_NONE                       RegType = 0
	REG_SZ                         RegType = 1
	REG_EXPAND_SZ                  RegType = 2
	REG_BINARY                     RegType = 3
	REG_DWORD_LITTLE_ENDIAN        RegType = 4
	REG_DWORD_BIG_ENDIAN           RegType = 5
	REG_LINK                       RegType = 6
	REG_MULTI_SZ                   RegType = 7
	REG_RESOURCE_LIST              RegType = 8
	REG_FULL_RESOURCE_DESCRIPTOR   RegType = 9
	REG_RESOURCE_REQUIREMENTS_LIST RegType = 10
	REG_QWORD_LITTLE_ENDIAN        RegType = 11
	REG_QWORD_BIG_ENDIAN           RegType = 12
)

// Valid reports whether t may appear on the wire. REG_NONE is a model
// sentinel and is never wire-legal.
func (t RegType) Valid() bool {
	return t >= REG_SZ && t <= REG_QWORD_BIG_ENDIAN
}

// Kind returns the payload shape carried by values of type t.
func (t RegType) Kind() DataKind {
	switch t {
	case REG_SZ, REG_EXPAND_SZ, REG_LINK:
		return KindString
	case REG_MULTI_SZ, REG_RESOURCE_LIST, REG_FULL_RESOURCE_DESCRIPTOR, REG_RESOURCE_REQUIREMENTS_LIST:
		return KindStrings
	case REG_BINARY:
		return KindBinary
	case REG_DWORD_LITTLE_ENDIAN, REG_DWORD_BIG_ENDIAN:
		return KindDword
	case REG_QWORD_LITTLE_ENDIAN, REG_QWORD_BIG_ENDIAN:
		return KindQword
	default:
		return KindNone
	}
}

// String implements the Stringer interface for RegType.
func (t RegType) String() string {
	switch t {
	case REG_NONE:
		return "REG_NONE"
	case REG_SZ:
		return "REG_SZ"
	case REG_EXPAND_SZ:
		return "REG_EXPAND_SZ"
	case REG_BINARY:
		return "REG_BINARY"
	case REG_DWORD_LITTLE_ENDIAN:
		return "REG_DWORD_LITTLE_ENDIAN"
	case REG_DWORD_BIG_ENDIAN:
		return "REG_DWORD_BIG_ENDIAN"
	case REG_LINK:
		return "REG_LINK"
	case REG_MULTI_SZ:
		return "REG_MULTI_SZ"
	case REG_RESOURCE_LIST:
		return "REG_RESOURCE_LIST"
	case REG_FULL_RESOURCE_DESCRIPTOR:
		return "REG_FULL_RESOURCE_DESCRIPTOR"
	case REG_RESOURCE_REQUIREMENTS_LIST:
		return "REG_RESOURCE_REQUIREMENTS_LIST"
	case REG_QWORD_LITTLE_ENDIAN:
		return "REG_QWORD_LITTLE_ENDIAN"
	case REG_QWORD_BIG_ENDIAN:
		return "REG_QWORD_BIG_ENDIAN"
	default:
		return fmt.Sprintf("UNKNOWN_TYPE_%d", uint32(t))
	}
}
