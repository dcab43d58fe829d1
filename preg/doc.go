/*
Package preg reads and writes Windows Group Policy Registry Preferences
files (PReg, the on-disk format of Registry.pol).

# Quick Start

Parse a policy stream:

	p := preg.New()
	file, err := p.Parse(r)
	if err != nil {
	    return err
	}
	for _, in := range file.Body.Instructions {
	    fmt.Printf("%s!%s (%s)\n", in.Key, in.Value, in.Type)
	}

Build and write one:

	file := &preg.File{Body: &preg.Body{Instructions: []preg.Instruction{
	    preg.NewSZ("Software\\Policies\\App", "Greeting", "hello"),
	    preg.NewDwordLE("Software\\Policies\\App", "Retries", 3),
	}}}
	err := p.Write(w, file)

# Round-trip guarantees

Parsing a well-formed stream and writing the result reproduces the input
byte for byte; writing any document this package accepts and re-parsing it
yields an equal document. Instruction order is preserved verbatim.

# Errors

Failures wrap the sentinel errors re-exported by this package (ErrBadHeader,
ErrBadKey, ErrBadSize, ...); match them with errors.Is. A document returned
alongside a non-nil error is never partially valid — it is always nil.

# Concurrency

A Parser reuses two transcoding contexts across calls and is not safe for
concurrent use. Construct one Parser per goroutine.
*/
package preg
