package apply

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/joshuapare/regkit/internal/logger"
	"github.com/joshuapare/regkit/pkg/ast"
	"github.com/joshuapare/regkit/pkg/types"
)

// keyWriter is the subset of an open registry key the applier writes
// through. golang.org/x/sys/windows/registry.Key satisfies it.
type keyWriter interface {
	SetStringValue(name, value string) error
	SetExpandStringValue(name, value string) error
	SetStringsValue(name string, value []string) error
	SetDWordValue(name string, value uint32) error
	SetQWordValue(name string, value uint64) error
	SetBinaryValue(name string, value []byte) error
	Close() error
}

// openFunc creates or opens the key at path for writing.
type openFunc func(path string, view types.View) (keyWriter, error)

// RegistryOptions configures a Registry applier.
type RegistryOptions struct {
	// Limits the document must satisfy. Zero means ast.DefaultLimits.
	Limits ast.Limits

	// Logger receives one record per section written.
	// If nil, the process-wide logger is used.
	Logger *slog.Logger
}

// Registry writes parsed documents through the registry API.
type Registry struct {
	limits ast.Limits
	log    *slog.Logger
	open   openFunc
}

var _ DocumentApplier = (*Registry)(nil)

// NewRegistry returns a DocumentApplier over the live registry.
func NewRegistry(opts RegistryOptions) *Registry {
	limits := opts.Limits
	if limits == (ast.Limits{}) {
		limits = ast.DefaultLimits()
	}
	return &Registry{limits: limits, log: logger.Or(opts.Logger), open: openKey}
}

// ApplyDocument implements DocumentApplier. Sections are created if
// missing and values are written in document order. The first failure
// stops the apply; earlier writes are not rolled back.
func (r *Registry) ApplyDocument(ctx context.Context, doc *ast.Document, view types.View) error {
	if doc == nil {
		return nil
	}
	if err := doc.Validate(r.limits); err != nil {
		return err
	}

	for _, s := range doc.Sections {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.applySection(s, view); err != nil {
			return err
		}
		r.log.Debug("section applied", "path", s.Path, "values", len(s.Entries), "view", view.String())
	}
	return nil
}

func (r *Registry) applySection(s *ast.Section, view types.View) error {
	k, err := r.open(s.Path, view)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.Path, err)
	}
	defer k.Close()

	for _, e := range s.Entries {
		if err := r.writeValue(k, e); err != nil {
			return fmt.Errorf(`set %s\%s: %w`, s.Path, e.DisplayName(), err)
		}
	}
	return nil
}

func (r *Registry) writeValue(k keyWriter, e *ast.Entry) error {
	v := e.Value
	switch v.Kind {
	case types.String:
		return k.SetStringValue(e.Name, v.Text)
	case types.ExpandString:
		return k.SetExpandStringValue(e.Name, v.Text)
	case types.Link:
		// The registry API has no typed setter for REG_LINK.
		r.log.Warn("writing link value as string", "name", e.DisplayName())
		return k.SetStringValue(e.Name, v.Text)
	case types.MultiString:
		ss, _ := v.Strings()
		return k.SetStringsValue(e.Name, ss)
	case types.Dword:
		n, ok := v.Uint64()
		if !ok {
			return fmt.Errorf("invalid dword %q", v.Text)
		}
		return k.SetDWordValue(e.Name, uint32(n))
	case types.Qword:
		n, ok := v.Uint64()
		if !ok {
			return fmt.Errorf("invalid qword %q", v.Text)
		}
		return k.SetQWordValue(e.Name, n)
	case types.Binary:
		return r.writeBinary(k, e)
	default:
		return fmt.Errorf("cannot write value of kind %s", v.Kind)
	}
}

// writeBinary writes hex(n) data using the typed setter for n where one
// exists, and as REG_BINARY otherwise.
func (r *Registry) writeBinary(k keyWriter, e *ast.Entry) error {
	v := e.Value
	b, ok := v.Bytes()
	if !ok {
		return fmt.Errorf("invalid hex data %q", v.Text)
	}

	switch v.HexType {
	case types.REG_BINARY:
		return k.SetBinaryValue(e.Name, b)
	case types.REG_SZ:
		if s, ok := v.DecodedText(); ok {
			return k.SetStringValue(e.Name, s)
		}
	case types.REG_EXPAND_SZ:
		if s, ok := v.DecodedText(); ok {
			return k.SetExpandStringValue(e.Name, s)
		}
	case types.REG_MULTI_SZ:
		if ss, ok := v.Strings(); ok {
			return k.SetStringsValue(e.Name, ss)
		}
	case types.REG_DWORD:
		if n, ok := v.Uint64(); ok {
			return k.SetDWordValue(e.Name, uint32(n))
		}
	case types.REG_QWORD:
		if n, ok := v.Uint64(); ok {
			return k.SetQWordValue(e.Name, n)
		}
	}
	r.log.Warn("writing typed hex value as binary", "name", e.DisplayName(), "type", v.HexType.String())
	return k.SetBinaryValue(e.Name, b)
}
