package ast

const (
	// ============================================================================
	// Windows Registry Limits
	// ============================================================================
	// These constants define the official limits imposed by Windows Registry.
	// Different Windows versions may have slightly different limits, but these
	// represent the most commonly documented values.

	// WindowsMaxValues is the hard limit for the number of values per key
	// in Windows Registry.
	WindowsMaxValues = 16384

	// WindowsMaxValueSize1MB is the standard maximum size for a single
	// registry value's data (1 MB).
	WindowsMaxValueSize1MB = 1 << 20

	// WindowsMaxValueSize10MB is a relaxed maximum for large binary data.
	WindowsMaxValueSize10MB = 10 << 20

	// WindowsMaxValueSize64KB is a conservative maximum for constrained
	// environments.
	WindowsMaxValueSize64KB = 64 << 10

	// WindowsMaxKeyNameLen is the hard limit for registry key names
	// in Windows (measured in characters, not bytes).
	WindowsMaxKeyNameLen = 255

	// WindowsMaxKeyNameLenHalf is half the Windows limit, useful for
	// strict validation scenarios.
	WindowsMaxKeyNameLenHalf = 128

	// WindowsMaxValueNameLen is the hard limit for registry value names
	// in Windows (measured in characters, not bytes).
	WindowsMaxValueNameLen = 16383

	// WindowsMaxValueNameLenSmall is a much smaller limit for strict
	// validation scenarios.
	WindowsMaxValueNameLenSmall = 255

	// WindowsMaxTreeDepthPractical is the practical limit for registry
	// tree depth.
	WindowsMaxTreeDepthPractical = 512

	// WindowsMaxTreeDepthDeep allows very deep trees for special cases.
	WindowsMaxTreeDepthDeep = 1024

	// WindowsMaxTreeDepthShallow is a conservative limit.
	WindowsMaxTreeDepthShallow = 128

	// StrictValuesDivisor is used to calculate strict value limits.
	StrictValuesDivisor = 16

	// utf16UnitSize is the size in bytes of one UTF-16 code unit, the
	// registry's storage encoding for string data.
	utf16UnitSize = 2
)
