//go:build windows

package apply

import (
	"golang.org/x/sys/windows/registry"

	"github.com/joshuapare/regkit/pkg/provider"
	"github.com/joshuapare/regkit/pkg/types"
)

func openKey(path string, view types.View) (keyWriter, error) {
	root, sub, err := provider.RegistryKey(path)
	if err != nil {
		return nil, types.Wrap(types.ErrInput, err)
	}
	k, _, err := registry.CreateKey(root, sub, registry.SET_VALUE|provider.ViewAccess(view))
	if err != nil {
		return nil, types.Wrap(types.ErrProvider, err)
	}
	return k, nil
}
