package format

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/pregkit/internal/buf"
	"github.com/joshuapare/pregkit/pkg/types"
)

// ParseHeader validates the 8-byte PReg header: the "PReg" magic followed by
// the little-endian version word 1. Both halves are checked; a file written
// by a future revision is rejected rather than misread.
func ParseHeader(b []byte) error {
	if len(b) < HeaderSize {
		return fmt.Errorf("header: %d bytes: %w", len(b), types.ErrBadHeader)
	}
	if !bytes.Equal(b[:SignatureSize], Signature) {
		return fmt.Errorf("header: bad signature: %w", types.ErrBadHeader)
	}
	if v := buf.U32LE(b[SignatureSize:]); v != Version {
		return fmt.Errorf("header: version %d: %w", v, types.ErrBadHeader)
	}
	return nil
}

// Header returns the 8 header bytes for a freshly written document.
func Header() []byte {
	b := make([]byte, 0, HeaderSize)
	b = append(b, Signature...)
	return buf.PutU32LE(b, Version)
}
