package printer

import (
	"encoding/hex"
	"encoding/json"

	"github.com/joshuapare/pregkit/pkg/types"
)

// jsonInstruction represents one instruction in JSON output.
type jsonInstruction struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Type  string `json:"type"`
	Data  any    `json:"data"`
}

// printJSON renders the document as one indented JSON array. Binary
// payloads are hex-encoded strings; numeric payloads stay numbers.
func (p *Printer) printJSON(f *types.File) error {
	ins := instructions(f)
	out := make([]jsonInstruction, 0, len(ins))
	for _, in := range ins {
		out = append(out, jsonInstruction{
			Key:   in.Key,
			Value: in.Value,
			Type:  in.Type.String(),
			Data:  jsonData(in.Data),
		})
	}
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func jsonData(d types.Data) any {
	switch d.Kind() {
	case types.KindString:
		s, _ := d.String()
		return s
	case types.KindStrings:
		list, _ := d.Strings()
		if list == nil {
			list = []string{}
		}
		return list
	case types.KindBinary:
		raw, _ := d.Binary()
		return hex.EncodeToString(raw)
	case types.KindDword:
		v, _ := d.Dword()
		return v
	case types.KindQword:
		v, _ := d.Qword()
		return v
	default:
		return nil
	}
}
