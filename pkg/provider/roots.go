package provider

import (
	"strings"

	"github.com/joshuapare/regkit/pkg/types"
)

// roots maps every accepted spelling of a hive root to its short form.
var roots = map[string]string{
	types.HKEYLocalMachine:       types.HKEYLocalMachineShort,
	types.HKEYLocalMachineShort:  types.HKEYLocalMachineShort,
	types.HKEYCurrentUser:        types.HKEYCurrentUserShort,
	types.HKEYCurrentUserShort:   types.HKEYCurrentUserShort,
	types.HKEYClassesRoot:        types.HKEYClassesRootShort,
	types.HKEYClassesRootShort:   types.HKEYClassesRootShort,
	types.HKEYUsers:              types.HKEYUsersShort,
	types.HKEYUsersShort:         types.HKEYUsersShort,
	types.HKEYCurrentConfig:      types.HKEYCurrentConfigShort,
	types.HKEYCurrentConfigShort: types.HKEYCurrentConfigShort,
}

// SplitRoot splits a registry path into its short hive root and the subkey
// path below it. ok is false if the first component is not a known hive.
// A trailing ':' on the root (PowerShell drive syntax) is accepted.
func SplitRoot(path string) (root, subkey string, ok bool) {
	path = strings.TrimPrefix(path, `\`)
	first, rest, _ := strings.Cut(path, `\`)
	first = strings.TrimSuffix(first, ":")
	root, ok = roots[strings.ToUpper(first)]
	if !ok {
		return "", "", false
	}
	return root, strings.Trim(rest, `\`), true
}

// canonicalPath returns path with its hive root shortened and lowercased,
// for use as a lookup key. Paths with unknown roots are only lowercased.
func canonicalPath(path string) string {
	if root, sub, ok := SplitRoot(path); ok {
		if sub == "" {
			return strings.ToLower(root)
		}
		return strings.ToLower(root + `\` + sub)
	}
	return strings.ToLower(strings.Trim(path, `\`))
}
