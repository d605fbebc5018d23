//go:build !windows

package provider

import (
	"context"

	"github.com/joshuapare/regkit/pkg/types"
)

// Lookup implements types.Provider. The live registry only exists on
// Windows; elsewhere every lookup fails.
func (r *Registry) Lookup(ctx context.Context, path, name string) (types.Value, error) {
	return types.Value{}, types.Wrap(types.ErrProvider, types.ErrUnsupported)
}
