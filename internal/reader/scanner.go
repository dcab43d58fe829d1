package reader

import (
	"errors"
	"fmt"
	"io"

	"github.com/joshuapare/pregkit/pkg/types"
)

// readChunkSize caps per-step allocation when reading declared-size payloads
// so a hostile size field cannot force a giant up-front allocation.
const readChunkSize = 64 * 1024

// scanner advances strictly forward over the caller's stream. The only
// lookahead is a single stashed byte used to detect end-of-stream at the top
// of the instruction loop.
type scanner struct {
	r       io.Reader
	peeked  byte
	hasPeek bool
}

func newScanner(r io.Reader) *scanner {
	return &scanner{r: r}
}

// AtEOF reports whether the stream is exhausted by reading one byte ahead.
// The byte, if any, is stashed and returned by the next read.
func (s *scanner) AtEOF() (bool, error) {
	if s.hasPeek {
		return false, nil
	}
	var one [1]byte
	n, err := s.r.Read(one[:])
	for n == 0 && err == nil {
		n, err = s.r.Read(one[:])
	}
	if n == 1 {
		s.peeked = one[0]
		s.hasPeek = true
		return false, nil
	}
	if errors.Is(err, io.EOF) {
		return true, nil
	}
	return false, fmt.Errorf("peek: %w: %w", types.ErrShortRead, err)
}

// ReadFull fills p from the stream, surfacing ErrShortRead when the stream
// ends or fails before p is full.
func (s *scanner) ReadFull(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	off := 0
	if s.hasPeek {
		p[0] = s.peeked
		s.hasPeek = false
		off = 1
	}
	if _, err := io.ReadFull(s.r, p[off:]); err != nil {
		return fmt.Errorf("need %d bytes: %w: %w", len(p), types.ErrShortRead, err)
	}
	return nil
}

// ReadN reads exactly n bytes, growing the result in bounded chunks so that
// a bogus declared size fails with ErrShortRead instead of exhausting memory.
func (s *scanner) ReadN(n uint32) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}
	remaining := int64(n)
	out := make([]byte, 0, min(remaining, readChunkSize))
	chunk := make([]byte, min(remaining, readChunkSize))
	for remaining > 0 {
		step := int64(readChunkSize)
		if remaining < step {
			step = remaining
		}
		if err := s.ReadFull(chunk[:step]); err != nil {
			return nil, err
		}
		out = append(out, chunk[:step]...)
		remaining -= step
	}
	return out, nil
}
