package format

import (
	"errors"
	"testing"

	"github.com/joshuapare/pregkit/pkg/types"
)

func TestHeaderRoundTrip(t *testing.T) {
	h := Header()
	if len(h) != HeaderSize {
		t.Fatalf("Header() length = %d", len(h))
	}
	want := []byte{'P', 'R', 'e', 'g', 0x01, 0x00, 0x00, 0x00}
	for i := range want {
		if h[i] != want[i] {
			t.Fatalf("Header() = % x, want % x", h, want)
		}
	}
	if err := ParseHeader(h); err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
}

func TestParseHeaderErrors(t *testing.T) {
	tests := []struct {
		name string
		b    []byte
	}{
		{"empty", nil},
		{"truncated", []byte{'P', 'R', 'e'}},
		{"bad signature", []byte{'r', 'e', 'g', 'f', 1, 0, 0, 0}},
		{"bad version", []byte{'P', 'R', 'e', 'g', 2, 0, 0, 0}},
		{"version zero", []byte{'P', 'R', 'e', 'g', 0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ParseHeader(tt.b)
			if !errors.Is(err, types.ErrBadHeader) {
				t.Fatalf("ParseHeader = %v, want ErrBadHeader", err)
			}
		})
	}
}
