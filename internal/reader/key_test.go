package reader

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/pregkit/internal/testutil"
	"github.com/joshuapare/pregkit/pkg/types"
)

func TestReadKeyPaths(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"single segment", "Software"},
		{"two segments", "Software\\Policies"},
		{"deep path", "Software\\Policies\\Vendor\\App"},
		{"single char", "A"},
		{"spaces and punctuation", "Key Name\\Sub (x86)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wire := testutil.File(testutil.Instruction(tt.key, "V", uint32(types.REG_SZ), testutil.SZ("x")))
			f, err := parse(t, wire)
			require.NoError(t, err)
			require.Equal(t, tt.key, f.Body.Instructions[0].Key)
		})
	}
}

func TestReadKeyPathErrors(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"empty key", ""},
		{"leading separator", "\\A"},
		{"trailing separator", "A\\"},
		{"double separator", "A\\\\B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wire := testutil.File(testutil.Instruction(tt.key, "V", uint32(types.REG_SZ), testutil.SZ("x")))
			_, err := parse(t, wire)
			require.ErrorIs(t, err, types.ErrBadKey)
		})
	}

	t.Run("control character", func(t *testing.T) {
		wire := testutil.File(testutil.Instruction("A\tB", "V", uint32(types.REG_SZ), testutil.SZ("x")))
		_, err := parse(t, wire)
		require.ErrorIs(t, err, types.ErrBadKey)
	})

	t.Run("non-ascii code unit", func(t *testing.T) {
		in := testutil.Instruction("AB", "V", uint32(types.REG_SZ), testutil.SZ("x"))
		// Overwrite the second key unit with U+0141.
		in[4], in[5] = 0x41, 0x01
		_, err := parse(t, testutil.File(in))
		require.ErrorIs(t, err, types.ErrBadKey)
	})
}

func TestKeySeparatorOnWire(t *testing.T) {
	// Key "A\B" travels as 41 00 5C 00 42 00 00 00.
	wire := testutil.File(testutil.Instruction("A\\B", "V", uint32(types.REG_SZ), testutil.SZ("x")))
	require.Equal(t,
		[]byte{0x41, 0x00, 0x5C, 0x00, 0x42, 0x00, 0x00, 0x00},
		wire[10:18])

	f, err := parse(t, wire)
	require.NoError(t, err)
	require.Equal(t, "A\\B", f.Body.Instructions[0].Key)
}
