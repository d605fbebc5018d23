//go:build windows

package provider

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"

	"github.com/joshuapare/regkit/pkg/types"
)

// registryRoots maps short hive roots to predefined registry keys.
var registryRoots = map[string]registry.Key{
	types.HKEYLocalMachineShort:  registry.LOCAL_MACHINE,
	types.HKEYCurrentUserShort:   registry.CURRENT_USER,
	types.HKEYClassesRootShort:   registry.CLASSES_ROOT,
	types.HKEYUsersShort:         registry.USERS,
	types.HKEYCurrentConfigShort: registry.CURRENT_CONFIG,
}

// RegistryKey resolves the hive root of path to a predefined key and
// returns the subkey path below it.
func RegistryKey(path string) (registry.Key, string, error) {
	root, sub, ok := SplitRoot(path)
	if !ok {
		return 0, "", fmt.Errorf("unknown hive root in %q", path)
	}
	return registryRoots[root], sub, nil
}

// ViewAccess returns the access flag selecting view.
func ViewAccess(view types.View) uint32 {
	if view == types.View32 {
		return registry.WOW64_32KEY
	}
	return registry.WOW64_64KEY
}

// Lookup implements types.Provider.
func (r *Registry) Lookup(ctx context.Context, path, name string) (types.Value, error) {
	if err := ctx.Err(); err != nil {
		return types.Value{}, err
	}
	root, sub, err := RegistryKey(path)
	if err != nil {
		return types.Value{}, types.Wrap(types.ErrProvider, err)
	}

	k, err := registry.OpenKey(root, sub, registry.QUERY_VALUE|ViewAccess(r.view))
	if errors.Is(err, registry.ErrNotExist) {
		return types.Value{}, fmt.Errorf("key %s: %w", path, types.ErrNotFound)
	}
	if err != nil {
		return types.Value{}, types.Wrap(types.ErrProvider, fmt.Errorf("open %s: %w", path, err))
	}
	defer k.Close()

	n, _, err := k.GetValue(name, nil)
	if errors.Is(err, registry.ErrNotExist) {
		return types.Value{}, fmt.Errorf(`value %s\%s: %w`, path, name, types.ErrNotFound)
	}
	if err != nil {
		return types.Value{}, types.Wrap(types.ErrProvider, fmt.Errorf(`query %s\%s: %w`, path, name, err))
	}
	buf := make([]byte, n)
	n, valtype, err := k.GetValue(name, buf)
	if err != nil {
		return types.Value{}, types.Wrap(types.ErrProvider, fmt.Errorf(`read %s\%s: %w`, path, name, err))
	}

	v := decodeRegistryValue(types.RegType(valtype), buf[:n])
	r.log.Debug("registry lookup", "path", path, "name", name, "type", types.RegType(valtype).String(), "view", r.view.String())
	return v, nil
}
