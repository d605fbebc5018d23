package regtext

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/regkit/pkg/types"
)

// decodeInput converts raw file bytes to UTF-8 text.
//
// A byte order mark always wins. Without one, enc selects the decoder. In
// auto mode (the default) input whose high bytes are all NUL is read as
// UTF-16LE, and input that is not valid UTF-8 is read as Windows-1252, the
// ANSI code page REGEDIT4 files are written in.
func decodeInput(data []byte, enc string) (string, error) {
	switch {
	case bytes.HasPrefix(data, UTF16LEBOM):
		return decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM), data)
	case bytes.HasPrefix(data, UTF8BOM):
		return string(data[len(UTF8BOM):]), nil
	}

	switch strings.ToUpper(enc) {
	case "", EncodingAuto:
		if looksUTF16LE(data) {
			return decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), data)
		}
		if utf8.Valid(data) {
			return string(data), nil
		}
		return decodeWith(charmap.Windows1252, data)
	case EncodingUTF8, "UTF8":
		return string(data), nil
	case EncodingUTF16LE, "UTF16LE":
		return decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), data)
	case EncodingWindows1252, "CP1252", "ANSI":
		return decodeWith(charmap.Windows1252, data)
	default:
		return "", types.Wrap(types.ErrInput, fmt.Errorf("unsupported encoding %q", enc))
	}
}

// looksUTF16LE reports whether data is UTF-16LE text without a BOM: an even
// number of bytes where the high byte of every code unit in the sample is
// NUL. .reg files are mostly ASCII, so real UTF-8 or ANSI text never has a
// NUL in every other byte.
func looksUTF16LE(data []byte) bool {
	if len(data) < UTF16CodeUnitSize || len(data)%UTF16CodeUnitSize != 0 {
		return false
	}
	sample := data[:min(len(data), UTF16SniffSize)]
	for i := 1; i < len(sample); i += UTF16CodeUnitSize {
		if sample[i] != 0 || sample[i-1] == 0 {
			return false
		}
	}
	return true
}

func decodeWith(e encoding.Encoding, data []byte) (string, error) {
	out, err := e.NewDecoder().Bytes(data)
	if err != nil {
		return "", types.Wrap(types.ErrInput, fmt.Errorf("decoding input: %w", err))
	}
	return string(out), nil
}

// splitLines splits text into physical lines with trailing CRs removed.
func splitLines(text string) ([]string, error) {
	scanner := bufio.NewScanner(strings.NewReader(text))
	buf := make([]byte, 0, ScannerInitialBufferSize)
	scanner.Buffer(buf, ScannerMaxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), CR))
	}
	if err := scanner.Err(); err != nil {
		return nil, types.Wrap(types.ErrInput, fmt.Errorf("scanning .reg text: %w", err))
	}
	return lines, nil
}
