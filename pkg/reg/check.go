package reg

import (
	"context"
	"log/slog"

	"github.com/joshuapare/regkit/pkg/integrity"
	"github.com/joshuapare/regkit/pkg/types"
)

// CheckOptions configures CheckFile and VerifyFile.
type CheckOptions struct {
	Parse ParseOptions

	// Aliases are hive root translations merged over the defaults.
	Aliases map[string]string

	// Logger receives parse and check records.
	// If nil, the process-wide logger is used.
	Logger *slog.Logger
}

// CheckFile parses path and reports whether every value in it is present
// in p with an equal value.
func CheckFile(ctx context.Context, path string, p types.Provider, opts CheckOptions) (bool, error) {
	r, err := VerifyFile(ctx, path, p, opts)
	if err != nil {
		return false, err
	}
	return r.InSync, nil
}

// VerifyFile is CheckFile returning the full report.
func VerifyFile(ctx context.Context, path string, p types.Provider, opts CheckOptions) (*integrity.Report, error) {
	if opts.Parse.Logger == nil {
		opts.Parse.Logger = opts.Logger
	}
	doc, err := ParseFile(path, opts.Parse)
	if err != nil {
		return nil, err
	}
	c := integrity.New(p, integrity.Options{Aliases: opts.Aliases, Logger: opts.Logger})
	return c.Verify(ctx, doc)
}
