// Package printer renders policy documents for humans and for registry
// tooling: a hierarchical text listing, JSON, and the Windows Registry
// Editor 5.00 (.reg) dialect.
package printer

import (
	"fmt"
	"io"

	"github.com/joshuapare/pregkit/pkg/types"
)

const (
	DefaultIndentSize    = 2
	DefaultMaxValueBytes = 32
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs a human-readable listing grouped by key.
	FormatText Format = "text"

	// FormatJSON outputs one JSON array of instructions.
	FormatJSON Format = "json"

	// FormatReg outputs a Windows Registry Editor 5.00 document,
	// UTF-16LE with BOM and CRLF line endings.
	FormatReg Format = "reg"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json, reg).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text format only).
	// Default: 2
	IndentSize int

	// MaxValueBytes limits how many bytes of binary values the text format
	// displays before truncating with "...". 0 means DefaultMaxValueBytes.
	MaxValueBytes int

	// ShowValueTypes includes REG_* type names (text format only).
	// Default: true when New is given nil options; a non-nil Options is
	// used as set, so its zero value leaves type names out.
	ShowValueTypes bool
}

func (o Options) withDefaults() Options {
	if o.Format == "" {
		o.Format = FormatText
	}
	if o.IndentSize <= 0 {
		o.IndentSize = DefaultIndentSize
	}
	if o.MaxValueBytes <= 0 {
		o.MaxValueBytes = DefaultMaxValueBytes
	}
	return o
}

// Printer renders a policy document to a writer.
type Printer struct {
	writer io.Writer
	opts   Options
}

// New creates a Printer writing to w. ShowValueTypes defaults to true when
// opts is nil.
func New(w io.Writer, opts *Options) *Printer {
	if opts == nil {
		opts = &Options{ShowValueTypes: true}
	}
	return &Printer{writer: w, opts: opts.withDefaults()}
}

// Print renders the document in the configured format.
func (p *Printer) Print(f *types.File) error {
	switch p.opts.Format {
	case FormatText:
		return p.printText(f)
	case FormatJSON:
		return p.printJSON(f)
	case FormatReg:
		return p.printReg(f)
	default:
		return fmt.Errorf("unknown format %q", p.opts.Format)
	}
}

// instructions flattens the optional body.
func instructions(f *types.File) []types.Instruction {
	if f == nil || f.Body == nil {
		return nil
	}
	return f.Body.Instructions
}
