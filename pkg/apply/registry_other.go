//go:build !windows

package apply

import "github.com/joshuapare/regkit/pkg/types"

// openKey fails everywhere but Windows.
func openKey(string, types.View) (keyWriter, error) {
	return nil, types.ErrUnsupported
}
