// Package integrity decides whether the state described by a parsed .reg
// document is already present in a key-value store.
//
// The comparator walks the document depth-first in file order and asks a
// types.Provider for every entry. The first entry that is missing or holds
// a different value ends the walk with a false verdict; the boolean answer
// does not depend on which entry failed, but the Report names it so callers
// can log it.
//
// Section paths are rewritten before lookup so that full hive names match
// the short aliases providers are addressed with:
//
//	HKEY_LOCAL_MACHINE\Software\X  ->  HKLM\Software\X
//	HKEY_CURRENT_USER\Software\X   ->  HKCU\Software\X
//
// Any other hive name is passed through unchanged unless extra aliases are
// configured.
package integrity
