package types

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindParse       ErrKind = iota // malformed or out-of-order .reg lines
	ErrKindNotFound                   // missing key/value in a provider
	ErrKindProvider                   // provider failed for a reason other than absence
	ErrKindInput                      // input path missing, unreadable or undecodable
	ErrKindUnsupported                // operation not available on this platform
)

// String returns a short name for the kind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindParse:
		return "parse"
	case ErrKindNotFound:
		return "not-found"
	case ErrKindProvider:
		return "provider"
	case ErrKindInput:
		return "input"
	case ErrKindUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is a sentinel of the same kind and message, so
// that errors produced by Wrap still match their sentinel under errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind && e.Msg == t.Msg
}

// Wrap returns a copy of sentinel carrying cause.
func Wrap(sentinel *Error, cause error) *Error {
	return &Error{Kind: sentinel.Kind, Msg: sentinel.Msg, Err: cause}
}

// Sentinels commonly returned by implementations.
var (
	// ErrKeyBeforeSection indicates an assignment line with no open section.
	ErrKeyBeforeSection = &Error{Kind: ErrKindParse, Msg: "key assignment before any section header"}
	// ErrContinuationBeforeKey indicates a continuation line with no entry to extend.
	ErrContinuationBeforeKey = &Error{Kind: ErrKindParse, Msg: "continuation line without an open entry"}
	// ErrAnomalousTypeTag marks an unknown type tag that was recovered as a
	// string value. It is recorded on the document, never returned.
	ErrAnomalousTypeTag = &Error{Kind: ErrKindParse, Msg: "unknown value type tag"}
	// ErrNotFound indicates a missing key or value.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
	// ErrProvider indicates a lookup failure other than absence (permission, transport).
	ErrProvider = &Error{Kind: ErrKindProvider, Msg: "provider lookup failed"}
	// ErrInput indicates the input file could not be opened, read or decoded.
	ErrInput = &Error{Kind: ErrKindInput, Msg: "invalid input"}
	// ErrUnsupported indicates the operation is not available on this platform.
	ErrUnsupported = &Error{Kind: ErrKindUnsupported, Msg: "unsupported on this platform"}
)
