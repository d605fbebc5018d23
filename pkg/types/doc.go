// Package types defines the value model shared by the .reg parser, the
// integrity comparator, providers and appliers.
//
// Values are kept in their textual .reg form and decoded on demand, so a
// parsed document and a value read back from a live store can be compared
// with a single, explicit equality function (see Equal).
//
// Errors carry a stable ErrKind so callers can branch on intent rather than
// text. Absence of a value is reported as ErrNotFound; every other provider
// failure is wrapped as ErrProvider and must not be treated as a mismatch.
package types
