package format

// PReg wire format constants.
//
//	Offset  Size  Description
//	------  ----  -------------------------------
//	 0x000   4    'P' 'R' 'e' 'g'
//	 0x004   4    Version, little-endian 1
//	 0x008   *    Bracketed instructions
//
// All fixed punctuation inside instructions is encoded as one UTF-16LE code
// unit (2 bytes, little-endian).
var Signature = []byte{'P', 'R', 'e', 'g'}

const (
	// SignatureSize is the byte length of the "PReg" magic.
	SignatureSize = 4

	// Version is the only version word this codec accepts.
	Version uint32 = 1

	// HeaderSize is the full fixed header: signature plus version.
	HeaderSize = 8

	// CodeUnitSize is the byte width of one UTF-16 code unit.
	CodeUnitSize = 2

	// Punctuation code units delimiting instruction fields.
	BracketOpen  uint16 = '['  // 0x005B
	BracketClose uint16 = ']'  // 0x005D
	Separator    uint16 = ';'  // 0x003B
	Backslash    uint16 = '\\' // 0x005C

	// DWORDSize and QWORDSize are the fixed payload widths of the numeric
	// registry types.
	DWORDSize = 4
	QWORDSize = 8

	// MinStringBlockSize is the smallest legal text or multi-text payload:
	// a lone NUL16 terminator.
	MinStringBlockSize = 2
)
