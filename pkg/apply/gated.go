package apply

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joshuapare/regkit/internal/logger"
	"github.com/joshuapare/regkit/internal/regtext"
	"github.com/joshuapare/regkit/pkg/ast"
	"github.com/joshuapare/regkit/pkg/integrity"
	"github.com/joshuapare/regkit/pkg/types"
)

// Gated imports a file only when the integrity check says the registry does
// not already hold its contents.
type Gated struct {
	Checker *integrity.Checker
	Applier FileApplier

	// Parse controls how the file is read before checking.
	Parse regtext.ParseOptions

	// Limits the document must satisfy before import.
	// Zero means ast.DefaultLimits.
	Limits ast.Limits

	Logger *slog.Logger
}

// ApplyFile parses and checks path, then imports it if needed. applied
// reports whether the import ran.
func (g *Gated) ApplyFile(ctx context.Context, path string, view types.View) (applied bool, err error) {
	log := logger.Or(g.Logger)

	data, err := os.ReadFile(path)
	if err != nil {
		return false, types.Wrap(types.ErrInput, fmt.Errorf("read %s: %w", path, err))
	}
	doc, err := regtext.ParseBytes(data, g.Parse)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", path, err)
	}

	limits := g.Limits
	if limits == (ast.Limits{}) {
		limits = ast.DefaultLimits()
	}
	if err := doc.Validate(limits); err != nil {
		return false, fmt.Errorf("validate %s: %w", path, err)
	}

	report, err := g.Checker.Verify(ctx, doc)
	if err != nil {
		return false, fmt.Errorf("check %s: %w", path, err)
	}
	if report.InSync {
		log.Info("registry already up to date, skipping import", "file", path, "checked", report.Checked)
		return false, nil
	}

	log.Info("registry differs, importing", "file", path, "first", report.Mismatch.String())
	if err := g.Applier.ApplyFile(ctx, path, view); err != nil {
		return false, err
	}
	return true, nil
}
