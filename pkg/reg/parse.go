package reg

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joshuapare/regkit/internal/regtext"
	"github.com/joshuapare/regkit/pkg/ast"
	"github.com/joshuapare/regkit/pkg/types"
)

// ParseOptions controls input decoding and logging.
type ParseOptions = regtext.ParseOptions

// ParseError reports the line a parse failed on.
type ParseError = regtext.ParseError

// Input encodings accepted by ParseOptions.InputEncoding.
const (
	EncodingAuto        = regtext.EncodingAuto
	EncodingUTF8        = regtext.EncodingUTF8
	EncodingUTF16LE     = regtext.EncodingUTF16LE
	EncodingWindows1252 = regtext.EncodingWindows1252
)

// ParseFile reads and parses a .reg file.
//
// Example:
//
//	doc, err := reg.ParseFile("changes.reg", reg.ParseOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, s := range doc.Sections {
//	    fmt.Println(s.Path, len(s.Entries))
//	}
func ParseFile(path string, opts ParseOptions) (*ast.Document, error) {
	if err := checkRegFile(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, types.Wrap(types.ErrInput, fmt.Errorf("failed to read .reg file %s: %w", path, err))
	}

	return ParseBytes(data, opts)
}

// ParseString parses .reg content held in a string.
//
// Example:
//
//	doc, err := reg.ParseString(`Windows Registry Editor Version 5.00
//
//	[HKEY_LOCAL_MACHINE\Software\MyApp]
//	"Version"="1.0"
//	`, reg.ParseOptions{})
func ParseString(content string, opts ParseOptions) (*ast.Document, error) {
	return ParseBytes([]byte(content), opts)
}

// ParseBytes decodes and parses raw .reg file content.
func ParseBytes(data []byte, opts ParseOptions) (*ast.Document, error) {
	doc, err := regtext.ParseBytes(data, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse .reg data: %w", err)
	}
	return doc, nil
}

// ParseLines parses content that has already been split into lines.
// Lines must not carry line terminators.
func ParseLines(lines []string, opts ParseOptions) (*ast.Document, error) {
	doc, err := regtext.Parse(lines, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse .reg data: %w", err)
	}
	return doc, nil
}

// checkRegFile fails with types.ErrInput unless path is a regular file.
// The Stat error is kept so callers can tell a missing file from one they
// may not read.
func checkRegFile(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return types.Wrap(types.ErrInput, fmt.Errorf(".reg file not found: %s: %w", path, err))
	}
	if err != nil {
		return types.Wrap(types.ErrInput, fmt.Errorf("cannot access .reg file %s: %w", path, err))
	}
	if info.IsDir() {
		return types.Wrap(types.ErrInput, fmt.Errorf(".reg path is a directory: %s", path))
	}
	return nil
}
