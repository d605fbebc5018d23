package ast

import (
	"errors"
	"fmt"
	"unicode/utf16"

	"github.com/joshuapare/regkit/pkg/types"
)

// Limits defines constraints a document must satisfy before it is applied
// to a live registry.
type Limits struct {
	// MaxValues is the maximum number of values in one section.
	MaxValues int

	// MaxValueSize is the maximum size of a single value's data in bytes,
	// measured as the registry stores it (UTF-16 for strings).
	MaxValueSize int

	// MaxKeyNameLen is the maximum length of one path component in characters.
	MaxKeyNameLen int

	// MaxValueNameLen is the maximum length of a value name in characters.
	MaxValueNameLen int

	// MaxTreeDepth is the maximum number of components in a section path.
	MaxTreeDepth int
}

// DefaultLimits returns the standard Windows registry limits.
func DefaultLimits() Limits {
	return Limits{
		MaxValues:       WindowsMaxValues,
		MaxValueSize:    WindowsMaxValueSize1MB,
		MaxKeyNameLen:   WindowsMaxKeyNameLen,
		MaxValueNameLen: WindowsMaxValueNameLen,
		MaxTreeDepth:    WindowsMaxTreeDepthPractical,
	}
}

// RelaxedLimits returns more permissive limits for special cases.
// Use with caution - these allow documents that may not import on real systems.
func RelaxedLimits() Limits {
	return Limits{
		MaxValues:       WindowsMaxValues,
		MaxValueSize:    WindowsMaxValueSize10MB,
		MaxKeyNameLen:   WindowsMaxKeyNameLen,
		MaxValueNameLen: WindowsMaxValueNameLen,
		MaxTreeDepth:    WindowsMaxTreeDepthDeep,
	}
}

// StrictLimits returns conservative limits for constrained environments.
func StrictLimits() Limits {
	return Limits{
		MaxValues:       WindowsMaxValues / StrictValuesDivisor,
		MaxValueSize:    WindowsMaxValueSize64KB,
		MaxKeyNameLen:   WindowsMaxKeyNameLenHalf,
		MaxValueNameLen: WindowsMaxValueNameLenSmall,
		MaxTreeDepth:    WindowsMaxTreeDepthShallow,
	}
}

// ValidationError represents a limit validation failure.
type ValidationError struct {
	Limit   string // Name of the limit that was exceeded
	Current int64  // Current value
	Maximum int64  // Maximum allowed value
	Path    string // Section path (if applicable)
	Name    string // Value name (if applicable)
}

func (e *ValidationError) Error() string {
	switch {
	case e.Path != "" && e.Name != "":
		return fmt.Sprintf("registry limit exceeded at '%s' value '%s': %s is %d (max %d)",
			e.Path, e.Name, e.Limit, e.Current, e.Maximum)
	case e.Path != "":
		return fmt.Sprintf("registry limit exceeded at '%s': %s is %d (max %d)",
			e.Path, e.Limit, e.Current, e.Maximum)
	}
	return fmt.Sprintf("registry limit exceeded: %s is %d (max %d)",
		e.Limit, e.Current, e.Maximum)
}

// Validate checks every section and entry against limits and returns the
// first violation.
func (d *Document) Validate(limits Limits) error {
	for _, s := range d.Sections {
		if err := s.Validate(limits); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the section path, its value count and each entry.
func (s *Section) Validate(limits Limits) error {
	parts := splitPath(s.Path)
	if len(parts) > limits.MaxTreeDepth {
		return &ValidationError{
			Limit:   "MaxTreeDepth",
			Current: int64(len(parts)),
			Maximum: int64(limits.MaxTreeDepth),
			Path:    s.Path,
		}
	}
	for _, p := range parts {
		if n := charLen(p); n > limits.MaxKeyNameLen {
			return &ValidationError{
				Limit:   "MaxKeyNameLen",
				Current: int64(n),
				Maximum: int64(limits.MaxKeyNameLen),
				Path:    s.Path,
			}
		}
	}
	if len(s.Entries) > limits.MaxValues {
		return &ValidationError{
			Limit:   "MaxValues",
			Current: int64(len(s.Entries)),
			Maximum: int64(limits.MaxValues),
			Path:    s.Path,
		}
	}
	for _, e := range s.Entries {
		if err := e.Validate(limits); err != nil {
			var ve *ValidationError
			if errors.As(err, &ve) {
				ve.Path = s.Path
			}
			return err
		}
	}
	return nil
}

// Validate checks the entry's name length and data size.
func (e *Entry) Validate(limits Limits) error {
	if n := charLen(e.Name); n > limits.MaxValueNameLen {
		return &ValidationError{
			Limit:   "MaxValueNameLen",
			Current: int64(n),
			Maximum: int64(limits.MaxValueNameLen),
			Name:    e.DisplayName(),
		}
	}
	if size := dataSize(e.Value); size > limits.MaxValueSize {
		return &ValidationError{
			Limit:   "MaxValueSize",
			Current: int64(size),
			Maximum: int64(limits.MaxValueSize),
			Name:    e.DisplayName(),
		}
	}
	return nil
}

// LimitViolation returns the ValidationError inside err, or nil.
func LimitViolation(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

// charLen counts characters the way the registry does: UTF-16 code units.
func charLen(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// dataSize estimates the stored size of v in bytes.
func dataSize(v types.Value) int {
	switch v.Kind {
	case types.Dword:
		return 4
	case types.Qword:
		return 8
	case types.Binary:
		if b, ok := v.Bytes(); ok {
			return len(b)
		}
	}
	// strings are stored UTF-16 with a terminator
	return (charLen(v.Text) + 1) * utf16UnitSize
}
