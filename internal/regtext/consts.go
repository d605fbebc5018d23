package regtext

const (
	// ============================================================================
	// Delimiters and Structural Tokens
	// ============================================================================

	// KeyOpenBracket marks the start of a registry key path
	KeyOpenBracket = "["

	// KeyCloseBracket marks the end of a registry key path
	KeyCloseBracket = "]"

	// ValueAssignment separates value names from their data
	ValueAssignment = "="

	// TypeSeparator separates a type tag from the value data (dword:0000002a)
	TypeSeparator = ":"

	// DefaultValueName names the default (unnamed) value
	DefaultValueName = "@"

	// CommentPrefix marks a comment line
	CommentPrefix = ";"

	// ============================================================================
	// Quote and Escape Characters
	// ============================================================================

	// Quote is the double-quote character for value names and string data
	Quote = "\""

	// Backslash is used for escaping, path separators and line continuation
	Backslash = "\\"

	// ContinuationMarker ends a physical line whose value continues on the next
	ContinuationMarker = Backslash

	// EscapedQuote is the escaped double-quote sequence
	EscapedQuote = "\\\""

	// EscapedBackslash is the escaped backslash sequence
	EscapedBackslash = "\\\\"

	// CR is the carriage return character
	CR = "\r"

	// ============================================================================
	// Value Type Tags
	// ============================================================================

	// ValueTypeString identifies string values
	ValueTypeString = "string"

	// ValueTypeDWORD identifies DWORD values
	ValueTypeDWORD = "dword"

	// ValueTypeHex identifies binary values; hex(n) names the registry type
	ValueTypeHex = "hex"

	// ============================================================================
	// Encoding Names
	// ============================================================================

	// EncodingAuto detects the encoding from the byte order mark
	EncodingAuto = "AUTO"

	// EncodingUTF8 is the identifier for UTF-8 encoding
	EncodingUTF8 = "UTF-8"

	// EncodingUTF16LE is the identifier for UTF-16 little-endian encoding
	EncodingUTF16LE = "UTF-16LE"

	// EncodingWindows1252 is the identifier for the ANSI code page REGEDIT4
	// files are usually written in
	EncodingWindows1252 = "WINDOWS-1252"

	// ============================================================================
	// Buffer and Parsing Sizes
	// ============================================================================

	// ScannerInitialBufferSize is the initial buffer size for the line scanner
	ScannerInitialBufferSize = 64 * 1024 // 64KB

	// ScannerMaxLineSize is the maximum line size for the line scanner
	ScannerMaxLineSize = 1024 * 1024 // 1MB

	// UTF16CodeUnitSize is the size of a UTF-16 code unit in bytes
	UTF16CodeUnitSize = 2

	// UTF16SniffSize is how many leading bytes are inspected when guessing
	// whether BOM-less input is UTF-16LE
	UTF16SniffSize = 512
)

var (
	// UTF16LEBOM is the byte order mark for UTF-16 little-endian
	UTF16LEBOM = []byte{0xFF, 0xFE}

	// UTF8BOM is the byte order mark for UTF-8
	UTF8BOM = []byte{0xEF, 0xBB, 0xBF}
)
