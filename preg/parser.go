package preg

import (
	"io"

	"github.com/joshuapare/pregkit/internal/format"
	"github.com/joshuapare/pregkit/internal/reader"
	"github.com/joshuapare/pregkit/internal/writer"
	"github.com/joshuapare/pregkit/pkg/types"
)

// Parser is a PReg codec instance. It owns two transcoding contexts — one
// per conversion direction — opened at construction and reused for the
// parser's lifetime. The contexts are stateful, so a Parser must not be
// shared by concurrent Parse or Write calls; independent goroutines each
// construct their own.
type Parser struct {
	read  *format.Transcoder
	write *format.Transcoder
}

// New constructs a codec instance.
func New() *Parser {
	return &Parser{
		read:  format.NewTranscoder(),
		write: format.NewTranscoder(),
	}
}

// Parse consumes r to end-of-stream and returns the decoded document. The
// error, if any, wraps exactly one of the sentinel errors in pkg/types; the
// partially built document is never returned.
func (p *Parser) Parse(r io.Reader) (*types.File, error) {
	return reader.New(r, p.read).ReadFile()
}

// Write emits f to w. A document without a body emits nothing. Invalid
// models (malformed keys, type/payload disagreement) are rejected before
// their record bytes are written.
func (p *Parser) Write(w io.Writer, f *types.File) error {
	return writer.New(w, p.write).WriteFile(f)
}
