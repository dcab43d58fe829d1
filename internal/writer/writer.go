// Package writer implements the emit side of the PReg grammar, the exact
// mirror of the reader: every stream it produces re-parses to an equal
// document, and re-emitting a parsed document reproduces the input bytes.
package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/joshuapare/pregkit/internal/buf"
	"github.com/joshuapare/pregkit/internal/format"
	"github.com/joshuapare/pregkit/pkg/types"
)

// Writer emits one PReg document to a stream. It owns the stream for the
// duration of WriteFile and must not be shared across goroutines.
type Writer struct {
	w  io.Writer
	tr *format.Transcoder
}

// New returns a Writer over w. A nil transcoder opens a fresh one; callers
// that write repeatedly pass their own so the conversion contexts are reused.
func New(w io.Writer, tr *format.Transcoder) *Writer {
	if tr == nil {
		tr = format.NewTranscoder()
	}
	return &Writer{w: w, tr: tr}
}

// WriteFile emits the document. A document without a body emits nothing.
// Each instruction is validated before any of its bytes reach the stream,
// so a failed write never leaves a syntactically broken record behind it.
func (w *Writer) WriteFile(f *types.File) error {
	if f == nil || f.Body == nil {
		return nil
	}
	if err := w.emit(format.Header()); err != nil {
		return err
	}
	for i := range f.Body.Instructions {
		if err := w.writeInstruction(&f.Body.Instructions[i]); err != nil {
			return fmt.Errorf("instruction %d: %w", i, err)
		}
	}
	return nil
}

func (w *Writer) writeInstruction(in *types.Instruction) error {
	if err := validateKey(in.Key); err != nil {
		return err
	}
	if err := validateValueName(in.Value); err != nil {
		return err
	}
	if !in.Type.Valid() {
		return fmt.Errorf("type tag %d: %w", uint32(in.Type), types.ErrBadType)
	}
	if in.Type.Kind() != in.Data.Kind() {
		return fmt.Errorf("%s does not carry payload kind %d: %w",
			in.Type, in.Data.Kind(), types.ErrBadType)
	}

	// The payload is built first so its byte length is known when the size
	// field is emitted.
	payload, err := w.buildPayload(in)
	if err != nil {
		return err
	}

	record := make([]byte, 0, 32+2*len(in.Key)+2*len(in.Value)+len(payload))
	record = buf.PutU16LE(record, format.BracketOpen)
	record = appendUnits(record, in.Key)
	record = buf.PutU16LE(record, 0)
	record = buf.PutU16LE(record, format.Separator)
	record = appendUnits(record, in.Value)
	record = buf.PutU16LE(record, 0)
	record = buf.PutU16LE(record, format.Separator)
	record = buf.PutU32LE(record, uint32(in.Type))
	record = buf.PutU16LE(record, format.Separator)
	record = buf.PutU32LE(record, uint32(len(payload)))
	record = buf.PutU16LE(record, format.Separator)
	record = append(record, payload...)
	record = buf.PutU16LE(record, format.BracketClose)
	return w.emit(record)
}

// buildPayload encodes the data field per the instruction type.
func (w *Writer) buildPayload(in *types.Instruction) ([]byte, error) {
	switch in.Type {
	case types.REG_SZ, types.REG_EXPAND_SZ, types.REG_LINK:
		s, _ := in.Data.String()
		return w.tr.EncodeString(s)
	case types.REG_MULTI_SZ, types.REG_RESOURCE_LIST,
		types.REG_FULL_RESOURCE_DESCRIPTOR, types.REG_RESOURCE_REQUIREMENTS_LIST:
		list, _ := in.Data.Strings()
		return w.tr.EncodeMultiString(list)
	case types.REG_BINARY:
		raw, _ := in.Data.Binary()
		return raw, nil
	case types.REG_DWORD_LITTLE_ENDIAN:
		v, _ := in.Data.Dword()
		return buf.PutU32LE(nil, v), nil
	case types.REG_DWORD_BIG_ENDIAN:
		v, _ := in.Data.Dword()
		return buf.PutU32BE(nil, v), nil
	case types.REG_QWORD_LITTLE_ENDIAN:
		v, _ := in.Data.Qword()
		return buf.PutU64LE(nil, v), nil
	case types.REG_QWORD_BIG_ENDIAN:
		v, _ := in.Data.Qword()
		return buf.PutU64BE(nil, v), nil
	default:
		return nil, fmt.Errorf("type tag %d: %w", uint32(in.Type), types.ErrBadType)
	}
}

// appendUnits widens an ASCII string to UTF-16LE code units. Validation has
// already confined key and value characters to the printable ASCII window.
func appendUnits(b []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		b = buf.PutU16LE(b, uint16(s[i]))
	}
	return b
}

func (w *Writer) emit(b []byte) error {
	if _, err := w.w.Write(b); err != nil {
		return fmt.Errorf("%w: %w", types.ErrWrite, err)
	}
	return nil
}

// validateKey enforces the key-path grammar on the in-memory form: one or
// more segments separated by single backslashes, each a non-empty run of
// characters in [0x20,0x7E] excluding the backslash.
func validateKey(key string) error {
	if key == "" {
		return fmt.Errorf("empty key path: %w", types.ErrBadKey)
	}
	for _, seg := range strings.Split(key, string(rune(types.KeySeparator))) {
		if seg == "" {
			return fmt.Errorf("empty key segment in %q: %w", key, types.ErrBadKey)
		}
		for i := 0; i < len(seg); i++ {
			if seg[i] < types.MinKeyChar || seg[i] > types.MaxKeyChar {
				return fmt.Errorf("illegal key character %#02x in %q: %w",
					seg[i], key, types.ErrBadKey)
			}
		}
	}
	return nil
}

// validateValueName enforces the value-name grammar: at most MaxValueNameLen
// characters, all in [0x20,0x7E]. The backslash is permitted.
func validateValueName(value string) error {
	if len(value) > types.MaxValueNameLen {
		return fmt.Errorf("value name of %d characters: %w", len(value), types.ErrBadValue)
	}
	for i := 0; i < len(value); i++ {
		if value[i] < types.MinKeyChar || value[i] > types.MaxKeyChar {
			return fmt.Errorf("illegal value character %#02x: %w", value[i], types.ErrBadValue)
		}
	}
	return nil
}
