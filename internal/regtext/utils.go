package regtext

import (
	"strings"
)

// regUnescaper resolves escapes in one left-to-right pass: \\\" becomes \".
var regUnescaper = strings.NewReplacer(EscapedBackslash, Backslash, EscapedQuote, Quote)

// unescapeRegString unescapes a string from .reg format.
// .reg files escape backslashes as \\ and quotes as \"
func unescapeRegString(s string) string {
	// Fast path: no backslashes means no escapes.
	if !strings.Contains(s, Backslash) {
		return s
	}
	return regUnescaper.Replace(s)
}

// findClosingQuote finds the position of the closing quote in a line,
// accounting for escaped quotes (preceded by an odd number of backslashes).
// Returns -1 if no valid closing quote is found.
// The search starts at position 1 (assuming the opening quote is at position 0).
func findClosingQuote(line string) int {
	for i := 1; i < len(line); i++ {
		if line[i] != '"' {
			continue
		}
		numBackslashes := 0
		for j := i - 1; j >= 1 && line[j] == '\\'; j-- {
			numBackslashes++
		}
		if numBackslashes%2 == 1 {
			continue
		}
		return i
	}
	return -1
}

// isQuoted reports whether s is enclosed in double quotes.
func isQuoted(s string) bool {
	return len(s) >= 2 && strings.HasPrefix(s, Quote) && strings.HasSuffix(s, Quote)
}

// unquote strips enclosing quotes and resolves escapes. Strings that are not
// enclosed in quotes are returned unchanged.
func unquote(s string) string {
	if !isQuoted(s) {
		return s
	}
	return unescapeRegString(s[1 : len(s)-1])
}

// splitAssignment splits name=value at the first '=' that is not inside the
// quoted name. ok is false if the line is not an assignment.
func splitAssignment(line string) (name, value string, ok bool) {
	if strings.HasPrefix(line, Quote) {
		end := findClosingQuote(line)
		if end < 0 {
			return "", "", false
		}
		rest := strings.TrimLeft(line[end+1:], " \t")
		if !strings.HasPrefix(rest, ValueAssignment) {
			return "", "", false
		}
		return line[:end+1], strings.TrimSpace(rest[1:]), true
	}
	idx := strings.Index(line, ValueAssignment)
	if idx <= 0 {
		return "", "", false
	}
	name = strings.TrimSpace(line[:idx])
	if name == "" {
		return "", "", false
	}
	return name, strings.TrimSpace(line[idx+1:]), true
}

// cleanName strips the enclosing quotes or brackets from a value name and
// maps "@" to the default value's empty name.
func cleanName(raw string) string {
	switch {
	case raw == DefaultValueName:
		return ""
	case isQuoted(raw):
		return unquote(raw)
	case strings.HasPrefix(raw, KeyOpenBracket) && strings.HasSuffix(raw, KeyCloseBracket):
		return strings.TrimSpace(raw[1 : len(raw)-1])
	}
	return raw
}

// splitTypeTag splits a value at its first ':' into a type tag and the data
// after it. ok is false when the text before the colon is not shaped like a
// tag (letters and digits, optionally followed by a parenthesized suffix), so
// quoted strings such as "C:\dir" are never split.
func splitTypeTag(value string) (tag, suffix, data string, ok bool) {
	idx := strings.Index(value, TypeSeparator)
	if idx <= 0 {
		return "", "", "", false
	}
	head := value[:idx]
	if open := strings.IndexByte(head, '('); open >= 0 {
		if !strings.HasSuffix(head, ")") {
			return "", "", "", false
		}
		tag, suffix = head[:open], head[open+1:len(head)-1]
	} else {
		tag = head
	}
	if !isTagWord(tag) {
		return "", "", "", false
	}
	return tag, suffix, value[idx+1:], true
}

func isTagWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case (c >= '0' && c <= '9') || c == '_':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
