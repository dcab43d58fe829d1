package reader

import (
	"fmt"
	"strings"

	"github.com/joshuapare/pregkit/internal/format"
	"github.com/joshuapare/pregkit/pkg/types"
)

// readKeyPath matches one or more backslash-separated segments terminated by
// NUL16. Each segment is a non-empty run of characters in [0x20,0x7E]
// excluding the backslash; the separator joins segments in the in-memory
// UTF-8 form.
func (r *Reader) readKeyPath() (string, error) {
	var sb strings.Builder
	segLen := 0
	for {
		u, err := r.readUnit()
		if err != nil {
			return "", err
		}
		switch {
		case u == 0:
			if segLen == 0 {
				return "", fmt.Errorf("empty key segment: %w", types.ErrBadKey)
			}
			return sb.String(), nil
		case u == format.Backslash:
			// A separator may only follow at least one segment character.
			if segLen == 0 {
				return "", fmt.Errorf("empty key segment before separator: %w", types.ErrBadKey)
			}
			sb.WriteByte(byte(types.KeySeparator))
			segLen = 0
		case u >= types.MinKeyChar && u <= types.MaxKeyChar:
			sb.WriteByte(byte(u))
			segLen++
		default:
			return "", fmt.Errorf("illegal key character %#04x: %w", u, types.ErrBadKey)
		}
	}
}
