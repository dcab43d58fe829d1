package preg_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/pregkit/preg"
)

// The literal documents from the format's conformance scenarios.
var (
	headerOnly = []byte{0x50, 0x52, 0x65, 0x67, 0x01, 0x00, 0x00, 0x00}

	singleSZ = []byte{
		0x50, 0x52, 0x65, 0x67, 0x01, 0x00, 0x00, 0x00,
		0x5B, 0x00, 0x41, 0x00, 0x00, 0x00, 0x3B, 0x00,
		0x42, 0x00, 0x00, 0x00, 0x3B, 0x00, 0x01, 0x00,
		0x00, 0x00, 0x3B, 0x00, 0x04, 0x00, 0x00, 0x00,
		0x3B, 0x00, 0x58, 0x00, 0x00, 0x00, 0x5D, 0x00,
	}
)

func TestEmptyDocumentWritesNothing(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, preg.New().Write(&out, &preg.File{}))
	require.Zero(t, out.Len())
}

func TestEmptyStreamRejected(t *testing.T) {
	_, err := preg.New().Parse(bytes.NewReader(nil))
	require.ErrorIs(t, err, preg.ErrBadHeader)
}

func TestHeaderOnlyRoundTrip(t *testing.T) {
	p := preg.New()
	f, err := p.Parse(bytes.NewReader(headerOnly))
	require.NoError(t, err)
	require.NotNil(t, f.Body)
	require.Empty(t, f.Body.Instructions)

	var out bytes.Buffer
	require.NoError(t, p.Write(&out, f))
	require.Equal(t, headerOnly, out.Bytes())
}

func TestSingleSZScenario(t *testing.T) {
	p := preg.New()
	f, err := p.Parse(bytes.NewReader(singleSZ))
	require.NoError(t, err)
	require.Len(t, f.Body.Instructions, 1)
	require.True(t, f.Body.Instructions[0].Equal(preg.NewSZ("A", "B", "X")))

	var out bytes.Buffer
	require.NoError(t, p.Write(&out, f))
	require.Equal(t, singleSZ, out.Bytes())
}

func TestWriteParseRoundTrip(t *testing.T) {
	p := preg.New()
	f := &preg.File{Body: &preg.Body{Instructions: []preg.Instruction{
		preg.NewSZ("Software\\Policies\\App", "Greeting", "hello"),
		preg.NewExpandSZ("Software\\Policies\\App", "Temp", "%TEMP%"),
		preg.NewLink("Software\\Policies\\App", "Alias", "target"),
		preg.NewMultiSZ("Software\\Policies\\App", "Servers", []string{"alpha", "beta"}),
		preg.NewMultiSZ("Software\\Policies\\App", "Empty", nil),
		preg.NewBinary("Software\\Policies\\App", "Blob", []byte{0x00, 0xFF, 0x10}),
		preg.NewDwordLE("Software\\Policies\\App", "Retries", 3),
		preg.NewDwordBE("Software\\Policies\\App", "Magic", 0xCAFEBABE),
		preg.NewQwordLE("Software\\Policies\\App", "Quota", 1<<40),
		preg.NewQwordBE("Software\\Policies\\App", "Epoch", 0x0102030405060708),
	}}}

	var wire bytes.Buffer
	require.NoError(t, p.Write(&wire, f))

	parsed, err := p.Parse(bytes.NewReader(wire.Bytes()))
	require.NoError(t, err)
	require.True(t, f.Equal(parsed))
}

func TestParseWriteByteExact(t *testing.T) {
	// A hand-assembled document covering dword scenario 4 and multi-sz
	// scenario 5 from the conformance set.
	var wire []byte
	wire = append(wire, headerOnly...)
	// [K;V;4;4;<01 00 00 00>]
	wire = append(wire,
		0x5B, 0x00, 0x4B, 0x00, 0x00, 0x00, 0x3B, 0x00,
		0x56, 0x00, 0x00, 0x00, 0x3B, 0x00, 0x04, 0x00,
		0x00, 0x00, 0x3B, 0x00, 0x04, 0x00, 0x00, 0x00,
		0x3B, 0x00, 0x01, 0x00, 0x00, 0x00, 0x5D, 0x00)
	// [K;V;7;10;<61 00 00 00 62 00 00 00 00 00>]
	wire = append(wire,
		0x5B, 0x00, 0x4B, 0x00, 0x00, 0x00, 0x3B, 0x00,
		0x56, 0x00, 0x00, 0x00, 0x3B, 0x00, 0x07, 0x00,
		0x00, 0x00, 0x3B, 0x00, 0x0A, 0x00, 0x00, 0x00,
		0x3B, 0x00, 0x61, 0x00, 0x00, 0x00, 0x62, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x5D, 0x00)

	p := preg.New()
	f, err := p.Parse(bytes.NewReader(wire))
	require.NoError(t, err)
	require.Len(t, f.Body.Instructions, 2)

	d, ok := f.Body.Instructions[0].Data.Dword()
	require.True(t, ok)
	require.Equal(t, uint32(1), d)

	list, ok := f.Body.Instructions[1].Data.Strings()
	require.True(t, ok)
	require.Equal(t, []string{"a", "b"}, list)

	var out bytes.Buffer
	require.NoError(t, p.Write(&out, f))
	require.Equal(t, wire, out.Bytes())
}

func TestParserReuseAcrossCalls(t *testing.T) {
	p := preg.New()
	for i := 0; i < 5; i++ {
		f, err := p.Parse(bytes.NewReader(singleSZ))
		require.NoError(t, err)
		var out bytes.Buffer
		require.NoError(t, p.Write(&out, f))
		require.Equal(t, singleSZ, out.Bytes())
	}
}

func TestTrailingGarbageRejected(t *testing.T) {
	wire := append(append([]byte{}, singleSZ...), 0xFF)
	_, err := preg.New().Parse(bytes.NewReader(wire))
	require.Error(t, err)
}
