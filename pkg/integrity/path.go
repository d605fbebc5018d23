package integrity

import (
	"strings"

	"github.com/joshuapare/regkit/pkg/types"
)

// Aliases maps hive root names (case-insensitive) to the names a provider
// expects.
type Aliases map[string]string

// DefaultAliases rewrites the two well-known hive names to their short forms.
func DefaultAliases() Aliases {
	return Aliases{
		types.HKEYLocalMachine: types.HKEYLocalMachineShort,
		types.HKEYCurrentUser:  types.HKEYCurrentUserShort,
	}
}

// With returns a copy of a with extra merged over it.
func (a Aliases) With(extra map[string]string) Aliases {
	out := make(Aliases, len(a)+len(extra))
	for k, v := range a {
		out[strings.ToUpper(k)] = v
	}
	for k, v := range extra {
		out[strings.ToUpper(k)] = v
	}
	return out
}

// Translate rewrites the hive root of path. Paths whose root has no alias
// are returned unchanged.
func (a Aliases) Translate(path string) string {
	root, rest, hasRest := strings.Cut(path, `\`)
	alias, ok := a.lookup(root)
	if !ok {
		return path
	}
	if !hasRest {
		return alias
	}
	return alias + `\` + rest
}

func (a Aliases) lookup(root string) (string, bool) {
	if alias, ok := a[root]; ok {
		return alias, true
	}
	for k, v := range a {
		if strings.EqualFold(k, root) {
			return v, true
		}
	}
	return "", false
}
