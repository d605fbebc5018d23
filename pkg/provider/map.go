package provider

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/joshuapare/regkit/pkg/ast"
	"github.com/joshuapare/regkit/pkg/types"
)

type mapKey struct {
	path string
	name string
}

func keyFor(path, name string) mapKey {
	return mapKey{path: canonicalPath(path), name: strings.ToLower(name)}
}

// Map is an in-memory provider. It is safe for concurrent use.
type Map struct {
	mu     sync.RWMutex
	values map[mapKey]types.Value
	keys   map[string]bool
	errs   map[mapKey]error
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{
		values: make(map[mapKey]types.Value),
		keys:   make(map[string]bool),
		errs:   make(map[mapKey]error),
	}
}

// FromDocument returns a Map holding every entry of doc. Later entries for
// the same path and name replace earlier ones, as they would on import.
func FromDocument(doc *ast.Document) *Map {
	m := NewMap()
	for _, s := range doc.Sections {
		m.AddKey(s.Path)
		for _, e := range s.Entries {
			m.Set(s.Path, e.Name, e.Value)
		}
	}
	return m
}

// AddKey records that the key at path exists, even with no values.
func (m *Map) AddKey(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys[canonicalPath(path)] = true
}

// Set stores v under path and name, creating the key.
func (m *Map) Set(path, name string, v types.Value) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := keyFor(path, name)
	m.keys[k.path] = true
	m.values[k] = v
}

// Fail makes lookups of path and name return err.
func (m *Map) Fail(path, name string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[keyFor(path, name)] = err
}

// Len returns the number of stored values.
func (m *Map) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.values)
}

// Lookup implements types.Provider.
func (m *Map) Lookup(ctx context.Context, path, name string) (types.Value, error) {
	if err := ctx.Err(); err != nil {
		return types.Value{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	k := keyFor(path, name)
	if err, ok := m.errs[k]; ok {
		return types.Value{}, types.Wrap(types.ErrProvider, err)
	}
	if !m.keys[k.path] {
		return types.Value{}, fmt.Errorf("key %s: %w", path, types.ErrNotFound)
	}
	v, ok := m.values[k]
	if !ok {
		return types.Value{}, fmt.Errorf(`value %s\%s: %w`, path, name, types.ErrNotFound)
	}
	return v, nil
}
