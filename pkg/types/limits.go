package types

// Registry limits enforced by the PReg grammar.
const (
	// MaxValueNameLen is the maximum number of UTF-16 code units in a value
	// name. Windows caps value names at 259 characters plus the terminator.
	MaxValueNameLen = 259

	// MinKeyChar and MaxKeyChar bound the printable window allowed in key
	// paths and value names.
	MinKeyChar = 0x20
	MaxKeyChar = 0x7E

	// KeySeparator splits key-path segments in the in-memory form. On the
	// wire it appears as the UTF-16LE code unit 0x005C.
	KeySeparator = '\\'
)
