package regtext

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/pregkit/pkg/types"
	"github.com/joshuapare/pregkit/preg/printer"
)

func TestParseRegBasic(t *testing.T) {
	reg := strings.Join([]string{
		"Windows Registry Editor Version 5.00",
		"",
		"; exported by tooling",
		"[SOFTWARE\\Vendor]",
		`"Path"="C:\\Temp"`,
		`"Count"=dword:0000002a`,
		`"Blob"=hex:01,02,0a`,
		`@="Default"`,
		"",
		"[SOFTWARE\\Other]",
		`"Multi"=hex(7):61,00,00,00,62,00,00,00,00,00`,
		"",
	}, "\r\n")

	f, err := ParseReg(strings.NewReader(reg))
	require.NoError(t, err)
	require.Equal(t, 5, f.Body.Len())

	in := f.Body.Instructions[0]
	require.Equal(t, "SOFTWARE\\Vendor", in.Key)
	require.Equal(t, "Path", in.Value)
	require.Equal(t, types.REG_SZ, in.Type)
	s, _ := in.Data.String()
	require.Equal(t, `C:\Temp`, s)

	in = f.Body.Instructions[1]
	require.Equal(t, types.REG_DWORD_LITTLE_ENDIAN, in.Type)
	d, _ := in.Data.Dword()
	require.Equal(t, uint32(42), d)

	in = f.Body.Instructions[2]
	require.Equal(t, types.REG_BINARY, in.Type)
	raw, _ := in.Data.Binary()
	require.Equal(t, []byte{0x01, 0x02, 0x0A}, raw)

	in = f.Body.Instructions[3]
	require.Equal(t, "", in.Value)
	s, _ = in.Data.String()
	require.Equal(t, "Default", s)

	in = f.Body.Instructions[4]
	require.Equal(t, "SOFTWARE\\Other", in.Key)
	require.Equal(t, types.REG_MULTI_SZ, in.Type)
	list, _ := in.Data.Strings()
	require.Equal(t, []string{"a", "b"}, list)
}

func TestParseRegTypedHexRuns(t *testing.T) {
	reg := strings.Join([]string{
		Header5,
		"",
		"[K]",
		`"Expand"=hex(2):25,00,54,00,45,00,4d,00,50,00,25,00,00,00`,
		`"BE"=hex(5):de,ad,be,ef`,
		`"QLE"=hex(b):08,07,06,05,04,03,02,01`,
		`"QBE"=hex(c):01,02,03,04,05,06,07,08`,
		"",
	}, "\r\n")

	f, err := ParseReg(strings.NewReader(reg))
	require.NoError(t, err)
	require.Equal(t, 4, f.Body.Len())

	s, _ := f.Body.Instructions[0].Data.String()
	require.Equal(t, types.REG_EXPAND_SZ, f.Body.Instructions[0].Type)
	require.Equal(t, "%TEMP%", s)

	d, _ := f.Body.Instructions[1].Data.Dword()
	require.Equal(t, types.REG_DWORD_BIG_ENDIAN, f.Body.Instructions[1].Type)
	require.Equal(t, uint32(0xDEADBEEF), d)

	q, _ := f.Body.Instructions[2].Data.Qword()
	require.Equal(t, uint64(0x0102030405060708), q)

	q, _ = f.Body.Instructions[3].Data.Qword()
	require.Equal(t, uint64(0x0102030405060708), q)
}

func TestParseRegContinuationLines(t *testing.T) {
	reg := strings.Join([]string{
		Header5,
		"",
		"[K]",
		`"Blob"=hex:01,02,\`,
		"  03,04",
		"",
	}, "\r\n")

	f, err := ParseReg(strings.NewReader(reg))
	require.NoError(t, err)
	raw, _ := f.Body.Instructions[0].Data.Binary()
	require.Equal(t, []byte{1, 2, 3, 4}, raw)
}

func TestParseRegErrors(t *testing.T) {
	tests := []struct {
		name string
		reg  string
	}{
		{"value before key", `"A"="x"`},
		{"deletion key", "[-SOFTWARE\\Gone]"},
		{"value deletion", "[K]\r\n\"A\"=-"},
		{"bad dword", "[K]\r\n\"A\"=dword:zz"},
		{"bad hex byte", "[K]\r\n\"A\"=hex:xy"},
		{"unterminated name", "[K]\r\n\"A=dword:1"},
		{"unterminated section", "[K"},
		{"garbage line", "[K]\r\nnonsense"},
		{"hex tag without preg form", "[K]\r\n\"A\"=hex(0):00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseReg(strings.NewReader(Header5 + "\r\n" + tt.reg + "\r\n"))
			require.Error(t, err)
		})
	}
}

func TestParseRegUTF16Input(t *testing.T) {
	// The printer emits UTF-16LE with BOM; its output must import cleanly.
	f := &types.File{Body: &types.Body{Instructions: []types.Instruction{
		{Key: "SOFTWARE\\App", Value: "Greeting", Type: types.REG_SZ, Data: types.StringData("hello")},
		{Key: "SOFTWARE\\App", Value: "Retries", Type: types.REG_DWORD_LITTLE_ENDIAN, Data: types.DwordData(7)},
		{Key: "SOFTWARE\\App", Value: "Servers", Type: types.REG_MULTI_SZ, Data: types.StringsData([]string{"a", "b"})},
		{Key: "SOFTWARE\\App", Value: "Blob", Type: types.REG_BINARY, Data: types.BinaryData(make([]byte, 40))},
	}}}

	var out bytes.Buffer
	p := printer.New(&out, &printer.Options{Format: printer.FormatReg})
	require.NoError(t, p.Print(f))

	parsed, err := ParseReg(bytes.NewReader(out.Bytes()))
	require.NoError(t, err)
	require.True(t, f.Equal(parsed), "printer output must re-import structurally equal")
}

func TestParseRegEmptyInput(t *testing.T) {
	f, err := ParseReg(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, 0, f.Body.Len())
}
