package printer

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/joshuapare/pregkit/pkg/types"
)

// printText renders instructions grouped under their key path:
//
//	Software\Policies\App
//	  Greeting [REG_SZ] = "hello"
//	  Retries [REG_DWORD_LITTLE_ENDIAN] = 0x3
func (p *Printer) printText(f *types.File) error {
	indent := strings.Repeat(" ", p.opts.IndentSize)
	lastKey := ""
	for i, in := range instructions(f) {
		if i == 0 || in.Key != lastKey {
			if _, err := fmt.Fprintf(p.writer, "%s\n", in.Key); err != nil {
				return err
			}
			lastKey = in.Key
		}
		name := in.Value
		if name == "" {
			name = "(Default)"
		}
		line := indent + name
		if p.opts.ShowValueTypes {
			line += " [" + in.Type.String() + "]"
		}
		line += " = " + p.formatData(in)
		if _, err := fmt.Fprintf(p.writer, "%s\n", line); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) formatData(in types.Instruction) string {
	switch in.Data.Kind() {
	case types.KindString:
		s, _ := in.Data.String()
		return fmt.Sprintf("%q", s)
	case types.KindStrings:
		list, _ := in.Data.Strings()
		quoted := make([]string, len(list))
		for i, s := range list {
			quoted[i] = fmt.Sprintf("%q", s)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	case types.KindBinary:
		raw, _ := in.Data.Binary()
		if len(raw) > p.opts.MaxValueBytes {
			return hex.EncodeToString(raw[:p.opts.MaxValueBytes]) +
				fmt.Sprintf("... (%d bytes)", len(raw))
		}
		return hex.EncodeToString(raw)
	case types.KindDword:
		v, _ := in.Data.Dword()
		return fmt.Sprintf("%#x", v)
	case types.KindQword:
		v, _ := in.Data.Qword()
		return fmt.Sprintf("%#x", v)
	default:
		return "<none>"
	}
}
