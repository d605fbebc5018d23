package types

import "bytes"

// Equal reports whether a parsed value and a stored value hold the same data.
//
// Comparison is by value, not by kind:
//
//   - numeric × numeric (Dword, Qword, numeric hex(n)): compared as integers
//   - Binary × Binary: compared byte for byte
//   - string-typed hex(n) × textual kind: the bytes are decoded and compared
//     as text
//   - any other pair: equal if the texts as written match, or if the
//     Normalized forms do, so a String "42" and a String "0000002a" both
//     equal a Dword 0x2a
//
// The last rule is deliberately tolerant and can report a match between
// values of different kinds.
func Equal(a, b Value) bool {
	if na, ok := a.Uint64(); ok {
		if nb, ok := b.Uint64(); ok {
			return na == nb
		}
	}
	if a.Kind == Binary && b.Kind == Binary {
		ab, aok := a.Bytes()
		bb, bok := b.Bytes()
		if aok && bok {
			return bytes.Equal(ab, bb)
		}
	}
	if s, ok := a.decodedText(); ok && b.Kind.textual() {
		return s == b.Text
	}
	if s, ok := b.decodedText(); ok && a.Kind.textual() {
		return a.Text == s
	}
	if a.Kind.textual() && b.Kind.textual() {
		return a.Text == b.Text
	}
	return a.Text == b.Text || a.Normalized() == b.Normalized()
}
