package format

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/pregkit/internal/buf"
	"github.com/joshuapare/pregkit/pkg/types"
)

// Transcoder converts between the wire text encoding (UTF-16LE) and the
// in-memory encoding (UTF-8). One decoder and one encoder are opened per
// instance and reused for its lifetime. A Transcoder is not safe for
// concurrent use; the codec owning it is single-threaded.
type Transcoder struct {
	dec *encoding.Decoder
	enc *encoding.Encoder
}

// NewTranscoder opens the two conversion contexts.
func NewTranscoder() *Transcoder {
	utf16le := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	return &Transcoder{
		dec: utf16le.NewDecoder(),
		enc: utf16le.NewEncoder(),
	}
}

// validateUnits rejects byte blocks that are not well-formed UTF-16LE:
// odd lengths and unpaired surrogates. The x/text decoder would substitute
// U+FFFD for those, which silently breaks byte-exact round trips.
func validateUnits(block []byte) error {
	if len(block)%CodeUnitSize != 0 {
		return fmt.Errorf("odd UTF-16 block length %d: %w", len(block), types.ErrEncoding)
	}
	for i := 0; i < len(block); i += CodeUnitSize {
		u := buf.U16LE(block[i:])
		switch {
		case u >= 0xD800 && u <= 0xDBFF:
			if i+2*CodeUnitSize > len(block) {
				return fmt.Errorf("truncated surrogate pair: %w", types.ErrEncoding)
			}
			lo := buf.U16LE(block[i+CodeUnitSize:])
			if lo < 0xDC00 || lo > 0xDFFF {
				return fmt.Errorf("unpaired high surrogate %#04x: %w", u, types.ErrEncoding)
			}
			i += CodeUnitSize
		case u >= 0xDC00 && u <= 0xDFFF:
			return fmt.Errorf("unpaired low surrogate %#04x: %w", u, types.ErrEncoding)
		}
	}
	return nil
}

// DecodeString interprets block as a NUL16-terminated UTF-16LE string and
// returns its UTF-8 form with the terminator stripped. A lone NUL16 decodes
// to the empty string.
func (t *Transcoder) DecodeString(block []byte) (string, error) {
	if len(block) < MinStringBlockSize || len(block)%CodeUnitSize != 0 {
		return "", fmt.Errorf("string block length %d: %w", len(block), types.ErrEncoding)
	}
	if buf.U16LE(block[len(block)-CodeUnitSize:]) != 0 {
		return "", fmt.Errorf("string block missing NUL16 terminator: %w", types.ErrEncoding)
	}
	body := block[:len(block)-CodeUnitSize]
	if err := validateUnits(body); err != nil {
		return "", err
	}
	out, err := t.dec.Bytes(body)
	if err != nil {
		return "", fmt.Errorf("utf-16le decode: %w", types.ErrEncoding)
	}
	return string(out), nil
}

// DecodeMultiString interprets block as a sequence of NUL16-terminated
// UTF-16LE strings closed by one extra NUL16. A lone NUL16 decodes to the
// empty list.
func (t *Transcoder) DecodeMultiString(block []byte) ([]string, error) {
	if len(block) < MinStringBlockSize || len(block)%CodeUnitSize != 0 {
		return nil, fmt.Errorf("multi-string block length %d: %w", len(block), types.ErrEncoding)
	}
	if buf.U16LE(block[len(block)-CodeUnitSize:]) != 0 {
		return nil, fmt.Errorf("multi-string block missing terminator: %w", types.ErrEncoding)
	}

	// Cut the block into NUL16-terminated segments. The final segment is the
	// block terminator itself and must be empty; it is discarded.
	var segments [][]byte
	start := 0
	for i := 0; i < len(block); i += CodeUnitSize {
		if buf.U16LE(block[i:]) == 0 {
			segments = append(segments, block[start:i])
			start = i + CodeUnitSize
		}
	}
	if start != len(block) {
		return nil, fmt.Errorf("multi-string element missing terminator: %w", types.ErrEncoding)
	}
	last := len(segments) - 1
	if len(segments[last]) != 0 {
		return nil, fmt.Errorf("multi-string block missing final NUL16: %w", types.ErrEncoding)
	}
	segments = segments[:last]

	list := make([]string, 0, len(segments))
	for _, seg := range segments {
		if err := validateUnits(seg); err != nil {
			return nil, err
		}
		out, err := t.dec.Bytes(seg)
		if err != nil {
			return nil, fmt.Errorf("utf-16le decode: %w", types.ErrEncoding)
		}
		list = append(list, string(out))
	}
	return list, nil
}

// EncodeString transcodes s to UTF-16LE and appends the NUL16 terminator.
// The result length is always even and at least 2.
func (t *Transcoder) EncodeString(s string) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("invalid UTF-8 in string: %w", types.ErrEncoding)
	}
	out, err := t.enc.Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("utf-16le encode: %w", types.ErrEncoding)
	}
	return append(out, 0x00, 0x00), nil
}

// EncodeMultiString encodes each element as a NUL16-terminated string and
// closes the block with one extra NUL16. The empty list encodes to a lone
// NUL16.
func (t *Transcoder) EncodeMultiString(list []string) ([]byte, error) {
	var block []byte
	for _, s := range list {
		// An embedded NUL would shift the element framing on decode.
		for _, r := range s {
			if r == 0 {
				return nil, fmt.Errorf("NUL inside multi-string element: %w", types.ErrEncoding)
			}
		}
		enc, err := t.EncodeString(s)
		if err != nil {
			return nil, err
		}
		block = append(block, enc...)
	}
	return append(block, 0x00, 0x00), nil
}
