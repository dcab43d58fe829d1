package regtext

// Registry Editor dialect markers.
const (
	// Header5 opens Unicode-era exports; Header4 the ANSI ones.
	Header5 = "Windows Registry Editor Version 5.00"
	Header4 = "REGEDIT4"

	CommentPrefix      = ";"
	KeyOpenBracket     = "["
	KeyCloseBracket    = "]"
	DefaultValuePrefix = "@="
	Quote              = `"`

	// ScannerMaxLineSize bounds a single physical input line; hex runs of
	// large binary values are split by continuations well below this, and
	// the folded value is not bounded by it.
	ScannerMaxLineSize       = 1024 * 1024
	ScannerInitialBufferSize = 64 * 1024
)
