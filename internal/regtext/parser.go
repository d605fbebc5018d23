package regtext

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/joshuapare/regkit/internal/logger"
	"github.com/joshuapare/regkit/pkg/ast"
	"github.com/joshuapare/regkit/pkg/types"
)

// ParseOptions controls how .reg input is decoded and parsed.
type ParseOptions struct {
	// InputEncoding selects the decoder when the input has no byte order
	// mark: "auto" (default), "UTF-8", "UTF-16LE" or "windows-1252".
	InputEncoding string

	// Logger receives debug records for recovered anomalies.
	// If nil, the process-wide logger is used.
	Logger *slog.Logger
}

// ParseError reports a fatal problem at a specific line.
// Err is types.ErrKeyBeforeSection or types.ErrContinuationBeforeKey.
type ParseError struct {
	Line int    // 1-based physical line number
	Text string // the offending line
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("regtext: line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }

var sectionHeader = regexp.MustCompile(`^\[(.+)\]$`)

// continuation tracks a value that is still being extended by continued
// physical lines. It lives only for the duration of one parse.
type continuation struct {
	open   bool
	target *ast.Entry
	text   string // value text accumulated so far, marker stripped
}

// parser holds the state threaded through the line classifiers.
type parser struct {
	doc     *ast.Document
	section *ast.Section
	cont    continuation
	lineNo  int
	log     *slog.Logger
}

// classifier inspects one line. It reports whether it handled the line;
// a non-nil error aborts the parse.
type classifier func(p *parser, line string) (bool, error)

// classifiers are tried in order and the first that handles a line wins.
// Lines no classifier handles are ignored.
var classifiers = []classifier{
	(*parser).sectionHeader,
	(*parser).assignment,
	(*parser).continuationLine,
	(*parser).continuationEnd,
}

// Parse builds a Document from physical lines. On error no document is
// returned.
func Parse(lines []string, opts ParseOptions) (*ast.Document, error) {
	p := &parser{
		doc: &ast.Document{},
		log: logger.Or(opts.Logger),
	}

	for i, raw := range lines {
		p.lineNo = i + 1
		line := strings.TrimSpace(strings.TrimRight(raw, CR))
		for _, classify := range classifiers {
			handled, err := classify(p, line)
			if err != nil {
				return nil, &ParseError{Line: p.lineNo, Text: raw, Err: err}
			}
			if handled {
				break
			}
		}
	}
	p.closeContinuation()
	return p.doc, nil
}

// ParseBytes decodes data and parses it.
func ParseBytes(data []byte, opts ParseOptions) (*ast.Document, error) {
	text, err := decodeInput(data, opts.InputEncoding)
	if err != nil {
		return nil, err
	}
	lines, err := splitLines(text)
	if err != nil {
		return nil, err
	}
	return Parse(lines, opts)
}

// ParseReader reads r to the end, decodes it and parses it.
func ParseReader(r io.Reader, opts ParseOptions) (*ast.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, types.Wrap(types.ErrInput, fmt.Errorf("reading .reg input: %w", err))
	}
	return ParseBytes(data, opts)
}

// sectionHeader handles [path] lines. An open continuation ends at a
// section boundary.
func (p *parser) sectionHeader(line string) (bool, error) {
	m := sectionHeader.FindStringSubmatch(line)
	if m == nil {
		return false, nil
	}
	p.closeContinuation()
	p.section = &ast.Section{Path: m[1]}
	p.doc.Sections = append(p.doc.Sections, p.section)
	return true, nil
}

// assignment handles name=value lines. An assignment always starts a new
// entry, even inside an open continuation.
func (p *parser) assignment(line string) (bool, error) {
	if strings.HasPrefix(line, CommentPrefix) {
		return false, nil
	}
	rawName, rawValue, ok := splitAssignment(line)
	if !ok {
		return false, nil
	}
	if p.section == nil {
		return false, types.ErrKeyBeforeSection
	}
	p.closeContinuation()

	entry := &ast.Entry{Name: cleanName(rawName)}
	text := p.typeValue(entry, rawValue)
	p.section.Entries = append(p.section.Entries, entry)

	if strings.HasSuffix(text, ContinuationMarker) {
		p.cont = continuation{
			open:   true,
			target: entry,
			text:   strings.TrimSuffix(text, ContinuationMarker),
		}
		return true, nil
	}
	finalize(entry, text)
	return true, nil
}

// typeValue sets the entry's kind from the value's type tag and returns the
// value text still to be finalized.
func (p *parser) typeValue(entry *ast.Entry, raw string) string {
	tag, suffix, data, ok := splitTypeTag(raw)
	if !ok {
		entry.Value.Kind = types.String
		return raw
	}
	switch strings.ToLower(tag) {
	case ValueTypeString:
		entry.Value.Kind = types.String
		return strings.TrimSpace(data)
	case ValueTypeDWORD:
		entry.Value.Kind = types.Dword
		return strings.TrimSpace(data)
	case ValueTypeHex:
		entry.Value.Kind = types.Binary
		entry.Value.HexType = hexType(suffix)
		return strings.TrimSpace(data)
	}

	// Unknown tag: keep the whole text, the colon was part of the value.
	entry.Value.Kind = types.String
	p.doc.Anomalies = append(p.doc.Anomalies, ast.Anomaly{
		Line:    p.lineNo,
		Section: p.section.Path,
		Name:    entry.Name,
		Tag:     tag,
	})
	p.log.Debug("recovered unknown type tag as string",
		"line", p.lineNo, "section", p.section.Path, "name", entry.Name,
		"tag", tag, "err", types.ErrAnomalousTypeTag)
	return raw
}

// continuationLine handles a line that extends an open value and is itself
// continued.
func (p *parser) continuationLine(line string) (bool, error) {
	if !p.cont.open || !strings.HasSuffix(line, ContinuationMarker) {
		return false, nil
	}
	if p.cont.target == nil {
		return false, types.ErrContinuationBeforeKey
	}
	p.cont.text += strings.TrimSpace(strings.TrimSuffix(line, ContinuationMarker))
	return true, nil
}

// continuationEnd handles the last physical line of a continued value.
func (p *parser) continuationEnd(line string) (bool, error) {
	if !p.cont.open {
		return false, nil
	}
	if p.cont.target == nil {
		return false, types.ErrContinuationBeforeKey
	}
	p.cont.text += line
	p.closeContinuation()
	return true, nil
}

// closeContinuation finalizes the open value, if any.
func (p *parser) closeContinuation() {
	if !p.cont.open {
		return
	}
	finalize(p.cont.target, p.cont.text)
	p.cont = continuation{}
}

// finalize stores the completed value text on entry, without enclosing
// quotes and escapes.
func finalize(entry *ast.Entry, text string) {
	entry.Value.Text = unquote(text)
}

// hexType maps the n of a hex(n) tag to a registry type. A bare hex tag, or
// a suffix that is not a hex number, means REG_BINARY.
func hexType(suffix string) types.RegType {
	if suffix == "" {
		return types.REG_BINARY
	}
	n, err := strconv.ParseUint(strings.TrimSpace(suffix), 16, 32)
	if err != nil {
		return types.REG_BINARY
	}
	return types.RegType(n)
}
