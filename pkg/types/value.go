package types

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// ValueKind is the closed set of value kinds a document entry can carry.
type ValueKind int

const (
	Unset ValueKind = iota
	Binary
	Dword
	ExpandString
	Link
	MultiString
	Qword
	String
)

func (k ValueKind) String() string {
	switch k {
	case Unset:
		return "unset"
	case Binary:
		return "binary"
	case Dword:
		return "dword"
	case ExpandString:
		return "expand-string"
	case Link:
		return "link"
	case MultiString:
		return "multi-string"
	case Qword:
		return "qword"
	case String:
		return "string"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// RegType returns the registry type a value of this kind is stored as.
func (k ValueKind) RegType() RegType {
	switch k {
	case Binary:
		return REG_BINARY
	case Dword:
		return REG_DWORD
	case ExpandString:
		return REG_EXPAND_SZ
	case Link:
		return REG_LINK
	case MultiString:
		return REG_MULTI_SZ
	case Qword:
		return REG_QWORD
	case String:
		return REG_SZ
	default:
		return REG_NONE
	}
}

func (k ValueKind) numeric() bool { return k == Dword || k == Qword }

func (k ValueKind) textual() bool {
	return k == String || k == ExpandString || k == Link || k == MultiString
}

// multiStringSep separates the elements of a MultiString value's Text.
const multiStringSep = "\x00"

// Value is a decoded entry value. Text holds the value as written in the
// .reg file (quotes stripped, escapes and continuations resolved):
//
//   - String, ExpandString, Link: the string itself
//   - Dword, Qword: hexadecimal digits, e.g. "0000002a"
//   - Binary: comma separated hex bytes, e.g. "01,02,ff"
//   - MultiString: elements joined by NUL
//
// HexType is only meaningful for Binary values and names the registry type
// from a hex(n) tag; a plain hex tag yields REG_BINARY.
type Value struct {
	Kind    ValueKind
	Text    string
	HexType RegType
}

// StringValue returns a String value.
func StringValue(s string) Value { return Value{Kind: String, Text: s} }

// ExpandStringValue returns an ExpandString value.
func ExpandStringValue(s string) Value { return Value{Kind: ExpandString, Text: s} }

// LinkValue returns a Link value.
func LinkValue(s string) Value { return Value{Kind: Link, Text: s} }

// MultiStringValue returns a MultiString value.
func MultiStringValue(ss []string) Value {
	return Value{Kind: MultiString, Text: strings.Join(ss, multiStringSep)}
}

// DwordValue returns a Dword value.
func DwordValue(n uint32) Value { return Value{Kind: Dword, Text: fmt.Sprintf("%08x", n)} }

// QwordValue returns a Qword value.
func QwordValue(n uint64) Value { return Value{Kind: Qword, Text: fmt.Sprintf("%016x", n)} }

// BinaryValue returns a Binary value of registry type t.
func BinaryValue(t RegType, b []byte) Value {
	return Value{Kind: Binary, Text: formatHexBytes(b), HexType: t}
}

func (v Value) String() string { return v.Text }

// Uint64 returns the numeric value of a Dword or Qword, or of a Binary
// tagged hex(4), hex(5) or hex(b).
func (v Value) Uint64() (uint64, bool) {
	switch v.Kind {
	case Dword, Qword:
		s := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(v.Text)), "0x")
		bits := 32
		if v.Kind == Qword {
			bits = 64
		}
		n, err := strconv.ParseUint(s, 16, bits)
		if err != nil {
			return 0, false
		}
		return n, true
	case Binary:
		b, ok := v.Bytes()
		if !ok {
			return 0, false
		}
		switch {
		case v.HexType == REG_DWORD && len(b) == 4:
			return uint64(binary.LittleEndian.Uint32(b)), true
		case v.HexType == REG_DWORD_BE && len(b) == 4:
			return uint64(binary.BigEndian.Uint32(b)), true
		case v.HexType == REG_QWORD && len(b) == 8:
			return binary.LittleEndian.Uint64(b), true
		}
	}
	return 0, false
}

// Bytes decodes the comma separated hex bytes of a Binary value.
func (v Value) Bytes() ([]byte, bool) {
	if v.Kind != Binary {
		return nil, false
	}
	b, err := parseHexBytes(v.Text)
	if err != nil {
		return nil, false
	}
	return b, true
}

// Strings returns the elements of a MultiString value, or of a Binary
// tagged hex(7).
func (v Value) Strings() ([]string, bool) {
	switch v.Kind {
	case MultiString:
		if v.Text == "" {
			return nil, true
		}
		return strings.Split(v.Text, multiStringSep), true
	case Binary:
		if v.HexType != REG_MULTI_SZ {
			return nil, false
		}
		s, ok := v.decodedText()
		if !ok {
			return nil, false
		}
		if s == "" {
			return nil, true
		}
		return strings.Split(s, multiStringSep), true
	}
	return nil, false
}

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// decodedText decodes a Binary value whose hex(n) tag names a string type
// (REG_SZ, REG_EXPAND_SZ, REG_LINK, REG_MULTI_SZ) from UTF-16LE. Trailing
// NUL terminators are dropped.
func (v Value) decodedText() (string, bool) {
	if v.Kind != Binary {
		return "", false
	}
	switch v.HexType {
	case REG_SZ, REG_EXPAND_SZ, REG_LINK, REG_MULTI_SZ:
	default:
		return "", false
	}
	b, ok := v.Bytes()
	if !ok {
		return "", false
	}
	out, err := utf16le.NewDecoder().Bytes(b)
	if err != nil {
		return "", false
	}
	return strings.TrimRight(string(out), multiStringSep), true
}

// DecodedText returns the text of a Binary value tagged with a string
// type, decoded from UTF-16LE.
func (v Value) DecodedText() (string, bool) { return v.decodedText() }

// Normalized returns the text form used for cross-kind comparison: numbers
// in decimal, binary data as lowercase comma separated bytes, string-typed
// binary data decoded, everything else as written.
func (v Value) Normalized() string {
	if n, ok := v.Uint64(); ok {
		return strconv.FormatUint(n, 10)
	}
	if s, ok := v.decodedText(); ok {
		return s
	}
	if b, ok := v.Bytes(); ok {
		return formatHexBytes(b)
	}
	return v.Text
}
