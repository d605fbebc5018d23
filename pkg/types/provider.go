package types

import (
	"context"
	"fmt"
)

// Provider is read-only lookup into a key-value store addressed by a
// section path and a value name.
//
// Lookup returns an error matching ErrNotFound when the key or value does
// not exist. Any other error means the store could not answer and must be
// propagated rather than treated as a mismatch.
type Provider interface {
	Lookup(ctx context.Context, path, name string) (Value, error)
}

// ProviderFunc adapts an ordinary function to the Provider interface.
type ProviderFunc func(ctx context.Context, path, name string) (Value, error)

// Lookup calls f(ctx, path, name).
func (f ProviderFunc) Lookup(ctx context.Context, path, name string) (Value, error) {
	return f(ctx, path, name)
}

// View selects the 32-bit or 64-bit registry view an import targets.
type View int

const (
	View64 View = 64
	View32 View = 32
)

func (v View) String() string { return fmt.Sprintf("%d-bit", int(v)) }

// ParseView parses "32" or "64".
func ParseView(s string) (View, error) {
	switch s {
	case "64", "":
		return View64, nil
	case "32":
		return View32, nil
	default:
		return 0, fmt.Errorf("invalid registry view %q (want 32 or 64)", s)
	}
}
