package printer

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/pregkit/internal/format"
	"github.com/joshuapare/pregkit/pkg/types"
)

// RegFileHeader opens every Registry Editor 5.00 document.
const RegFileHeader = "Windows Registry Editor Version 5.00"

// hexBytesPerLine is where regedit breaks hex runs with a continuation.
const hexBytesPerLine = 25

var regEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// printReg renders the document in the Registry Editor 5.00 dialect:
// UTF-16LE with BOM, CRLF line endings, consecutive instructions grouped
// under one [key] section. PReg key paths carry no hive root, so sections
// are emitted rootless, exactly as they appear in the policy file.
func (p *Printer) printReg(f *types.File) error {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	w := transform.NewWriter(p.writer, enc)
	tr := format.NewTranscoder()

	if _, err := io.WriteString(w, RegFileHeader+"\r\n"); err != nil {
		return err
	}
	lastKey := ""
	for i, in := range instructions(f) {
		if i == 0 || in.Key != lastKey {
			if _, err := fmt.Fprintf(w, "\r\n[%s]\r\n", in.Key); err != nil {
				return err
			}
			lastKey = in.Key
		}
		line, err := regValueLine(tr, in)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, line+"\r\n"); err != nil {
			return err
		}
	}
	return w.Close()
}

func regValueLine(tr *format.Transcoder, in types.Instruction) (string, error) {
	name := "@"
	if in.Value != "" {
		name = `"` + regEscaper.Replace(in.Value) + `"`
	}

	var data string
	switch in.Type {
	case types.REG_SZ:
		s, _ := in.Data.String()
		data = `"` + regEscaper.Replace(s) + `"`
	case types.REG_DWORD_LITTLE_ENDIAN:
		v, _ := in.Data.Dword()
		data = fmt.Sprintf("dword:%08x", v)
	case types.REG_BINARY:
		raw, _ := in.Data.Binary()
		data = hexRun("hex", raw)
	default:
		// Everything else is carried as a typed hex run of its wire payload.
		payload, err := wirePayload(tr, in)
		if err != nil {
			return "", err
		}
		data = hexRun(fmt.Sprintf("hex(%x)", uint32(in.Type)), payload)
	}
	return name + "=" + data, nil
}

// wirePayload builds the binary payload exactly as the PReg writer would.
func wirePayload(tr *format.Transcoder, in types.Instruction) ([]byte, error) {
	switch in.Type {
	case types.REG_EXPAND_SZ, types.REG_LINK:
		s, _ := in.Data.String()
		return tr.EncodeString(s)
	case types.REG_MULTI_SZ, types.REG_RESOURCE_LIST,
		types.REG_FULL_RESOURCE_DESCRIPTOR, types.REG_RESOURCE_REQUIREMENTS_LIST:
		list, _ := in.Data.Strings()
		return tr.EncodeMultiString(list)
	case types.REG_DWORD_BIG_ENDIAN:
		v, _ := in.Data.Dword()
		return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}, nil
	case types.REG_QWORD_LITTLE_ENDIAN:
		v, _ := in.Data.Qword()
		out := make([]byte, 8)
		for i := range out {
			out[i] = byte(v >> (8 * i))
		}
		return out, nil
	case types.REG_QWORD_BIG_ENDIAN:
		v, _ := in.Data.Qword()
		out := make([]byte, 8)
		for i := range out {
			out[7-i] = byte(v >> (8 * i))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("no .reg payload form for %s", in.Type)
	}
}

// hexRun renders prefix:aa,bb,... breaking into continuation lines the way
// regedit does.
func hexRun(prefix string, data []byte) string {
	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteByte(':')
	for i, b := range data {
		if i > 0 {
			sb.WriteByte(',')
			if i%hexBytesPerLine == 0 {
				sb.WriteString("\\\r\n  ")
			}
		}
		fmt.Fprintf(&sb, "%02x", b)
	}
	return sb.String()
}
