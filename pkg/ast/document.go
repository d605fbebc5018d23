package ast

import (
	"errors"
	"strings"

	"github.com/joshuapare/regkit/pkg/types"
)

// RegistryPathSeparator is the backslash character used to separate
// components in Windows Registry paths.
const RegistryPathSeparator = "\\"

// ErrStopWalk can be returned from a WalkFunc to end a walk early without
// reporting an error.
var ErrStopWalk = errors.New("stop walk")

// Document is one parsed .reg file.
type Document struct {
	Sections []*Section

	// Anomalies lists entries whose type tag was not recognized and that
	// were recovered as String values.
	Anomalies []Anomaly
}

// Section is a [path] block and the entries assigned under it.
type Section struct {
	Path    string
	Entries []*Entry
}

// Entry is one name=value assignment.
type Entry struct {
	Name  string // value name ("" for the default value)
	Value types.Value
}

// Anomaly records an assignment whose type tag was not recognized.
type Anomaly struct {
	Line    int
	Section string
	Name    string
	Tag     string
}

// Kind returns the kind of the entry's value.
func (e *Entry) Kind() types.ValueKind { return e.Value.Kind }

// DisplayName returns the name as regedit shows it: "@" for the default value.
func (e *Entry) DisplayName() string {
	if e.Name == "" {
		return "@"
	}
	return e.Name
}

// Find returns the entry with the given name (case-insensitive, like the
// registry itself). Returns nil if not found.
func (s *Section) Find(name string) *Entry {
	for _, e := range s.Entries {
		if strings.EqualFold(e.Name, name) {
			return e
		}
	}
	return nil
}

// Find returns the first section whose path matches (case-insensitive).
// Returns nil if not found.
func (d *Document) Find(path string) *Section {
	path = strings.Trim(path, RegistryPathSeparator)
	for _, s := range d.Sections {
		if strings.EqualFold(strings.Trim(s.Path, RegistryPathSeparator), path) {
			return s
		}
	}
	return nil
}

// Len returns the total number of entries across all sections.
func (d *Document) Len() int {
	n := 0
	for _, s := range d.Sections {
		n += len(s.Entries)
	}
	return n
}

// WalkFunc is called for every entry of a document in file order.
type WalkFunc func(s *Section, e *Entry) error

// Walk calls fn for each entry, section by section, in file order.
// Returning ErrStopWalk ends the walk and Walk returns nil; any other
// error ends the walk and is returned.
func (d *Document) Walk(fn WalkFunc) error {
	for _, s := range d.Sections {
		for _, e := range s.Entries {
			if err := fn(s, e); err != nil {
				if errors.Is(err, ErrStopWalk) {
					return nil
				}
				return err
			}
		}
	}
	return nil
}

// splitPath splits a registry path into its non-empty components.
func splitPath(path string) []string {
	parts := strings.Split(path, RegistryPathSeparator)
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
