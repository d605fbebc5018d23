package integrity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/joshuapare/regkit/internal/logger"
	"github.com/joshuapare/regkit/pkg/ast"
	"github.com/joshuapare/regkit/pkg/types"
)

// Reason says why an entry did not match.
type Reason int

const (
	ReasonMissing   Reason = iota + 1 // the provider has no such value
	ReasonDifferent                   // the provider's value is not equal
)

func (r Reason) String() string {
	switch r {
	case ReasonMissing:
		return "missing"
	case ReasonDifferent:
		return "different"
	default:
		return "unknown"
	}
}

// Mismatch describes the first entry that failed the check.
type Mismatch struct {
	Section string       // section path as written in the document
	Path    string       // path the provider was queried with
	Name    string       // value name ("" for the default value)
	Want    types.Value  // value from the document
	Got     *types.Value // value from the provider; nil when missing
	Reason  Reason
}

func (m *Mismatch) String() string {
	name := m.Name
	if name == "" {
		name = "@"
	}
	if m.Got == nil {
		return fmt.Sprintf(`%s\%s: %s`, m.Path, name, m.Reason)
	}
	return fmt.Sprintf(`%s\%s: %s (want %q, got %q)`, m.Path, name, m.Reason, m.Want.Text, m.Got.Text)
}

// Report is the outcome of Verify.
type Report struct {
	InSync   bool
	Checked  int       // entries looked up, including the failing one
	Mismatch *Mismatch // first failing entry; nil when InSync
}

// Options configures a Checker.
type Options struct {
	// Aliases are merged over DefaultAliases.
	Aliases map[string]string

	// Logger receives the first mismatch at Info level.
	// If nil, the process-wide logger is used.
	Logger *slog.Logger
}

// Checker compares documents against a provider.
type Checker struct {
	provider types.Provider
	aliases  Aliases
	log      *slog.Logger
}

// New returns a Checker that reads from p.
func New(p types.Provider, opts Options) *Checker {
	return &Checker{
		provider: p,
		aliases:  DefaultAliases().With(opts.Aliases),
		log:      logger.Or(opts.Logger),
	}
}

// Check reports whether every entry of doc is present in p with an equal
// value, using the default aliases.
func Check(ctx context.Context, doc *ast.Document, p types.Provider) (bool, error) {
	return New(p, Options{}).Check(ctx, doc)
}

// Check reports whether every entry of doc is present with an equal value.
// A false verdict is a normal result; an error means the provider could not
// answer and no verdict was reached.
func (c *Checker) Check(ctx context.Context, doc *ast.Document) (bool, error) {
	r, err := c.Verify(ctx, doc)
	if err != nil {
		return false, err
	}
	return r.InSync, nil
}

// Verify walks doc in file order and stops at the first entry that is
// missing or different.
func (c *Checker) Verify(ctx context.Context, doc *ast.Document) (*Report, error) {
	report := &Report{InSync: true}
	if doc == nil {
		return report, nil
	}

	err := doc.Walk(func(s *ast.Section, e *ast.Entry) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := c.aliases.Translate(s.Path)
		report.Checked++

		got, err := c.provider.Lookup(ctx, path, e.Name)
		switch {
		case errors.Is(err, types.ErrNotFound):
			report.Mismatch = &Mismatch{Section: s.Path, Path: path, Name: e.Name, Want: e.Value, Reason: ReasonMissing}
			return ast.ErrStopWalk
		case err != nil:
			if !errors.Is(err, types.ErrProvider) {
				err = types.Wrap(types.ErrProvider, err)
			}
			return fmt.Errorf(`lookup %s\%s: %w`, path, e.DisplayName(), err)
		case !types.Equal(e.Value, got):
			report.Mismatch = &Mismatch{Section: s.Path, Path: path, Name: e.Name, Want: e.Value, Got: &got, Reason: ReasonDifferent}
			return ast.ErrStopWalk
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if report.Mismatch != nil {
		report.InSync = false
		c.log.Info("integrity check failed",
			"section", report.Mismatch.Section,
			"path", report.Mismatch.Path,
			"name", report.Mismatch.Name,
			"reason", report.Mismatch.Reason.String(),
			"checked", report.Checked)
		return report, nil
	}
	c.log.Debug("integrity check passed", "checked", report.Checked)
	return report, nil
}
