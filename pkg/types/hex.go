package types

import (
	"fmt"
	"strings"
)

// parseHexBytes parses comma separated hex bytes ("01,02,ff"). Whitespace,
// CR/LF and stray continuation backslashes are skipped and single-digit bytes
// are padded with a leading zero.
func parseHexBytes(s string) ([]byte, error) {
	result := make([]byte, 0, len(s)/3+1)
	i := 0
	for i < len(s) {
		for i < len(s) && isHexSkipChar(s[i]) {
			i++
		}
		if i >= len(s) {
			break
		}

		hi := hexCharToNibble(s[i])
		if hi == 0xFF {
			return nil, fmt.Errorf("invalid hex digit %q at position %d", s[i], i)
		}
		i++

		var lo byte
		if i < len(s) && !isHexSkipChar(s[i]) {
			lo = hexCharToNibble(s[i])
			if lo == 0xFF {
				return nil, fmt.Errorf("invalid hex digit %q at position %d", s[i], i)
			}
			i++
		} else {
			lo, hi = hi, 0
		}
		if i < len(s) && !isHexSkipChar(s[i]) {
			return nil, fmt.Errorf("hex byte longer than two digits at position %d", i)
		}
		result = append(result, hi<<4|lo)
	}
	return result, nil
}

// formatHexBytes renders b as lowercase comma separated hex bytes.
func formatHexBytes(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b) * 3)
	for i, c := range b {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%02x", c)
	}
	return sb.String()
}

// hexCharToNibble converts a hex character to its 4-bit value.
// Returns 0xFF for invalid characters.
func hexCharToNibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0xFF
	}
}

func isHexSkipChar(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ',' || c == '\\'
}
