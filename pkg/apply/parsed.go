package apply

import (
	"context"
	"fmt"
	"os"

	"github.com/joshuapare/regkit/internal/regtext"
	"github.com/joshuapare/regkit/pkg/types"
)

// ParsedFile adapts a DocumentApplier to FileApplier by parsing the file
// first.
type ParsedFile struct {
	Applier DocumentApplier
	Parse   regtext.ParseOptions
}

var _ FileApplier = ParsedFile{}

// ApplyFile implements FileApplier.
func (p ParsedFile) ApplyFile(ctx context.Context, path string, view types.View) error {
	if err := checkFile(path); err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Wrap(types.ErrInput, fmt.Errorf("read %s: %w", path, err))
	}
	doc, err := regtext.ParseBytes(data, p.Parse)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return p.Applier.ApplyDocument(ctx, doc, view)
}
