// Package apply pushes .reg content into the live registry.
//
// FileApplier imports a .reg file as-is and DocumentApplier writes an
// already parsed document. Gated runs an integrity check first and only
// imports files that are not already in effect.
package apply

import (
	"context"
	"fmt"
	"os"

	"github.com/joshuapare/regkit/pkg/ast"
	"github.com/joshuapare/regkit/pkg/types"
)

// FileApplier imports a .reg file into the registry view.
type FileApplier interface {
	ApplyFile(ctx context.Context, path string, view types.View) error
}

// DocumentApplier writes a parsed document into the registry view.
type DocumentApplier interface {
	ApplyDocument(ctx context.Context, doc *ast.Document, view types.View) error
}

// checkFile fails with types.ErrInput unless path is a readable regular file.
func checkFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return types.Wrap(types.ErrInput, fmt.Errorf(".reg file not found: %s", path))
	}
	if info.IsDir() {
		return types.Wrap(types.ErrInput, fmt.Errorf(".reg path is a directory: %s", path))
	}
	return nil
}
