/*
Package reg is the high-level API for Windows .reg files.

# Quick Start

Parse a file and check it against the live registry:

	doc, err := reg.ParseFile("settings.reg", reg.ParseOptions{})
	if err != nil {
	    log.Fatal(err)
	}
	ok, err := integrity.Check(ctx, doc, provider.NewRegistry(provider.RegistryOptions{}))

Or in one call:

	ok, err := reg.CheckFile(ctx, "settings.reg", provider.NewRegistry(provider.RegistryOptions{}), reg.CheckOptions{})

# Parsing

Files may be UTF-16LE (what regedit exports), UTF-8, or Windows-1252.
A byte order mark selects the encoding; without one, valid UTF-8 is
assumed and anything else is read as Windows-1252. ParseOptions can force
an encoding.

Values are kept in the text form they had in the file. Use the accessors
on types.Value (Uint64, Bytes, Strings) to decode them.

Type tags the parser does not know are kept as string values holding the
whole right-hand side and are listed in Document.Anomalies.

# Checking

A check walks the document in file order and asks the provider for each
value. It stops at the first value that is missing or different. Provider
failures other than "not found" are returned as errors: a check that could
not finish has no verdict.

Section paths are translated before lookup: HKEY_LOCAL_MACHINE becomes HKLM
and HKEY_CURRENT_USER becomes HKCU. CheckOptions.Aliases adds more.
*/
package reg
