// Package provider implements types.Provider over the stores a .reg
// document can be checked against.
//
//   - Map is an in-memory store, also used as a snapshot of another .reg
//     file (FromDocument).
//   - Registry reads the live Windows registry. On other platforms every
//     lookup fails with types.ErrUnsupported.
//
// All providers accept hive roots in either their full or short form
// (HKEY_LOCAL_MACHINE or HKLM) and compare paths and names
// case-insensitively, like the registry itself.
package provider
