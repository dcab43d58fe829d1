// Package regtext imports Windows Registry Editor (.reg) documents into the
// policy model, the textual companion of the binary PReg format.
//
// Two input encodings are recognized: UTF-16LE with BOM (what regedit and
// this module's printer emit) and Windows-1252 (what hivex-era tooling
// exports on Linux). Detection is by BOM sniffing.
package regtext

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/pregkit/internal/buf"
	"github.com/joshuapare/pregkit/internal/format"
	"github.com/joshuapare/pregkit/pkg/types"
)

var valueUnescaper = strings.NewReplacer(`\\`, `\`, `\"`, `"`)

// ParseReg reads a .reg document and returns the equivalent policy file.
// Instruction order follows document order. Key deletion sections ([-key])
// and value deletions (name=-) have no PReg representation and are rejected.
func ParseReg(r io.Reader) (*types.File, error) {
	utf8r, err := decodedReader(r)
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(utf8r)
	scanner.Buffer(make([]byte, 0, ScannerInitialBufferSize), ScannerMaxLineSize)

	tr := format.NewTranscoder()
	body := &types.Body{Instructions: []types.Instruction{}}
	currentKey := ""
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, CommentPrefix) {
			continue
		}
		if line == Header5 || line == Header4 {
			continue
		}

		if strings.HasPrefix(line, KeyOpenBracket) {
			if !strings.HasSuffix(line, KeyCloseBracket) {
				return nil, fmt.Errorf("line %d: unterminated key section", lineNo)
			}
			key := strings.TrimSuffix(strings.TrimPrefix(line, KeyOpenBracket), KeyCloseBracket)
			if strings.HasPrefix(key, "-") {
				return nil, fmt.Errorf("line %d: key deletion has no PReg form", lineNo)
			}
			currentKey = key
			continue
		}

		if strings.HasPrefix(line, Quote) || strings.HasPrefix(line, DefaultValuePrefix) {
			if currentKey == "" {
				return nil, fmt.Errorf("line %d: value before any key section", lineNo)
			}
			// Fold continuation lines into one logical line.
			for strings.HasSuffix(line, `\`) {
				if !scanner.Scan() {
					return nil, fmt.Errorf("line %d: continuation at end of input", lineNo)
				}
				lineNo++
				line = strings.TrimSuffix(line, `\`) + strings.TrimSpace(scanner.Text())
			}
			in, err := parseValueLine(tr, currentKey, line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			body.Instructions = append(body.Instructions, in)
			continue
		}

		return nil, fmt.Errorf("line %d: unrecognized line %q", lineNo, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning .reg input: %w", err)
	}
	return &types.File{Body: body}, nil
}

// decodedReader sniffs the BOM and wraps r with the matching decoder.
func decodedReader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	bom, err := br.Peek(2)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading .reg input: %w", err)
	}
	if len(bom) == 2 && bom[0] == 0xFF && bom[1] == 0xFE {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		return transform.NewReader(br, dec), nil
	}
	return transform.NewReader(br, charmap.Windows1252.NewDecoder()), nil
}

// parseValueLine splits `"name"=data` (or `@=data`) and decodes the payload.
func parseValueLine(tr *format.Transcoder, key, line string) (types.Instruction, error) {
	var in types.Instruction

	name, rest, err := splitValueName(line)
	if err != nil {
		return in, err
	}
	typ, data, err := parseValueData(tr, rest)
	if err != nil {
		return in, err
	}
	in.Key = key
	in.Value = name
	in.Type = typ
	in.Data = data
	return in, nil
}

func splitValueName(line string) (string, string, error) {
	if strings.HasPrefix(line, DefaultValuePrefix) {
		return "", strings.TrimPrefix(line, DefaultValuePrefix), nil
	}
	// Scan the quoted name respecting escapes.
	for i := 1; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++
		case '"':
			rest := strings.TrimSpace(line[i+1:])
			if !strings.HasPrefix(rest, "=") {
				return "", "", fmt.Errorf("missing '=' after value name")
			}
			return valueUnescaper.Replace(line[1:i]), strings.TrimSpace(rest[1:]), nil
		}
	}
	return "", "", fmt.Errorf("unterminated value name")
}

func parseValueData(tr *format.Transcoder, data string) (types.RegType, types.Data, error) {
	switch {
	case strings.HasPrefix(data, Quote):
		if len(data) < 2 || !strings.HasSuffix(data, Quote) {
			return 0, types.Data{}, fmt.Errorf("unterminated string data")
		}
		return types.REG_SZ, types.StringData(valueUnescaper.Replace(data[1 : len(data)-1])), nil

	case strings.HasPrefix(data, "dword:"):
		v, err := strconv.ParseUint(strings.TrimPrefix(data, "dword:"), 16, 32)
		if err != nil {
			return 0, types.Data{}, fmt.Errorf("bad dword data: %w", err)
		}
		return types.REG_DWORD_LITTLE_ENDIAN, types.DwordData(uint32(v)), nil

	case data == "-":
		return 0, types.Data{}, fmt.Errorf("value deletion has no PReg form")

	case strings.HasPrefix(data, "hex"):
		return parseHexData(tr, data)

	default:
		return 0, types.Data{}, fmt.Errorf("unrecognized data %q", data)
	}
}

// parseHexData handles hex:... and hex(T):... runs, mapping the tag back to
// the registry type and re-decoding wire payloads where the dialect stores
// them as raw UTF-16LE bytes.
func parseHexData(tr *format.Transcoder, data string) (types.RegType, types.Data, error) {
	rest := strings.TrimPrefix(data, "hex")
	tag := uint64(uint32(types.REG_BINARY))
	if strings.HasPrefix(rest, "(") {
		end := strings.IndexByte(rest, ')')
		if end < 0 {
			return 0, types.Data{}, fmt.Errorf("unterminated hex type tag")
		}
		var err error
		tag, err = strconv.ParseUint(rest[1:end], 16, 32)
		if err != nil {
			return 0, types.Data{}, fmt.Errorf("bad hex type tag: %w", err)
		}
		rest = rest[end+1:]
	}
	if !strings.HasPrefix(rest, ":") {
		return 0, types.Data{}, fmt.Errorf("missing ':' after hex prefix")
	}
	payload, err := parseHexBytes(rest[1:])
	if err != nil {
		return 0, types.Data{}, err
	}

	typ := types.RegType(tag)
	switch typ {
	case types.REG_BINARY:
		return typ, types.BinaryData(payload), nil
	case types.REG_SZ, types.REG_EXPAND_SZ, types.REG_LINK:
		s, err := tr.DecodeString(payload)
		if err != nil {
			return 0, types.Data{}, err
		}
		return typ, types.StringData(s), nil
	case types.REG_MULTI_SZ, types.REG_RESOURCE_LIST,
		types.REG_FULL_RESOURCE_DESCRIPTOR, types.REG_RESOURCE_REQUIREMENTS_LIST:
		list, err := tr.DecodeMultiString(payload)
		if err != nil {
			return 0, types.Data{}, err
		}
		return typ, types.StringsData(list), nil
	case types.REG_DWORD_LITTLE_ENDIAN:
		if len(payload) != format.DWORDSize {
			return 0, types.Data{}, fmt.Errorf("dword payload of %d bytes", len(payload))
		}
		return typ, types.DwordData(buf.U32LE(payload)), nil
	case types.REG_DWORD_BIG_ENDIAN:
		if len(payload) != format.DWORDSize {
			return 0, types.Data{}, fmt.Errorf("dword payload of %d bytes", len(payload))
		}
		return typ, types.DwordData(buf.U32BE(payload)), nil
	case types.REG_QWORD_LITTLE_ENDIAN:
		if len(payload) != format.QWORDSize {
			return 0, types.Data{}, fmt.Errorf("qword payload of %d bytes", len(payload))
		}
		return typ, types.QwordData(buf.U64LE(payload)), nil
	case types.REG_QWORD_BIG_ENDIAN:
		if len(payload) != format.QWORDSize {
			return 0, types.Data{}, fmt.Errorf("qword payload of %d bytes", len(payload))
		}
		return typ, types.QwordData(buf.U64BE(payload)), nil
	default:
		return 0, types.Data{}, fmt.Errorf("hex type tag %#x has no PReg form", tag)
	}
}

func parseHexBytes(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []byte{}, nil
	}
	parts := strings.Split(s, ",")
	out := make([]byte, 0, len(parts))
	for _, part := range parts {
		b, err := strconv.ParseUint(strings.TrimSpace(part), 16, 8)
		if err != nil {
			return nil, fmt.Errorf("bad hex byte %q: %w", part, err)
		}
		out = append(out, byte(b))
	}
	return out, nil
}
