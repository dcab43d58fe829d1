// Package reader implements the read side of the PReg grammar: a
// recursive-descent parser over a forward-only byte stream.
package reader

import (
	"errors"
	"fmt"
	"io"

	"github.com/joshuapare/pregkit/internal/buf"
	"github.com/joshuapare/pregkit/internal/format"
	"github.com/joshuapare/pregkit/pkg/types"
)

// Reader parses one PReg document from a stream. It owns the stream for the
// duration of ReadFile and must not be shared across goroutines.
type Reader struct {
	sc *scanner
	tr *format.Transcoder
}

// New returns a Reader over r. A nil transcoder opens a fresh one; callers
// that parse repeatedly pass their own so the conversion contexts are reused.
func New(r io.Reader, tr *format.Transcoder) *Reader {
	if tr == nil {
		tr = format.NewTranscoder()
	}
	return &Reader{sc: newScanner(r), tr: tr}
}

// ReadFile parses the header and every following instruction until
// end-of-stream. On any error the returned document is nil and the stream
// position is unspecified.
func (r *Reader) ReadFile() (*types.File, error) {
	hdr := make([]byte, format.HeaderSize)
	if err := r.sc.ReadFull(hdr); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("header: %w", types.ErrBadHeader)
		}
		return nil, fmt.Errorf("header: %w", err)
	}
	if err := format.ParseHeader(hdr); err != nil {
		return nil, err
	}

	body := &types.Body{Instructions: []types.Instruction{}}
	for {
		eof, err := r.sc.AtEOF()
		if err != nil {
			return nil, err
		}
		if eof {
			break
		}
		in, err := r.readInstruction()
		if err != nil {
			return nil, fmt.Errorf("instruction %d: %w", len(body.Instructions), err)
		}
		body.Instructions = append(body.Instructions, in)
	}
	return &types.File{Body: body}, nil
}

// readInstruction matches `'[' keypath ';' value ';' type ';' size ';' data ']'`.
func (r *Reader) readInstruction() (types.Instruction, error) {
	var in types.Instruction

	if err := r.expectUnit(format.BracketOpen, "opening bracket"); err != nil {
		return in, err
	}
	key, err := r.readKeyPath()
	if err != nil {
		return in, err
	}
	if err := r.expectUnit(format.Separator, "separator after key"); err != nil {
		return in, err
	}
	value, err := r.readValueName()
	if err != nil {
		return in, err
	}
	if err := r.expectUnit(format.Separator, "separator after value"); err != nil {
		return in, err
	}
	typ, err := r.readType()
	if err != nil {
		return in, err
	}
	if err := r.expectUnit(format.Separator, "separator after type"); err != nil {
		return in, err
	}
	size, err := r.readU32()
	if err != nil {
		return in, err
	}
	if err := r.expectUnit(format.Separator, "separator after size"); err != nil {
		return in, err
	}
	data, err := r.readData(typ, size)
	if err != nil {
		return in, err
	}
	if err := r.expectUnit(format.BracketClose, "closing bracket"); err != nil {
		return in, err
	}

	in.Key = key
	in.Value = value
	in.Type = typ
	in.Data = data
	return in, nil
}

// readUnit reads one UTF-16LE code unit.
func (r *Reader) readUnit() (uint16, error) {
	var b [format.CodeUnitSize]byte
	if err := r.sc.ReadFull(b[:]); err != nil {
		return 0, err
	}
	return buf.U16LE(b[:]), nil
}

// expectUnit consumes one code unit and requires it to equal want.
func (r *Reader) expectUnit(want uint16, what string) error {
	got, err := r.readUnit()
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("%s: got %#04x: %w", what, got, types.ErrBadDelimiter)
	}
	return nil
}

// readU32 reads a 32-bit little-endian field.
func (r *Reader) readU32() (uint32, error) {
	var b [4]byte
	if err := r.sc.ReadFull(b[:]); err != nil {
		return 0, err
	}
	return buf.U32LE(b[:]), nil
}

// readType reads the type tag and rejects anything outside the wire-legal
// set. REG_NONE never appears in a PReg stream.
func (r *Reader) readType() (types.RegType, error) {
	raw, err := r.readU32()
	if err != nil {
		return 0, err
	}
	typ := types.RegType(raw)
	if !typ.Valid() {
		return 0, fmt.Errorf("type tag %d: %w", raw, types.ErrBadType)
	}
	return typ, nil
}
