package provider

import (
	"log/slog"

	"github.com/joshuapare/regkit/internal/logger"
	"github.com/joshuapare/regkit/pkg/types"
)

// RegistryOptions configures a Registry provider.
type RegistryOptions struct {
	// View selects the 32-bit or 64-bit registry view. Zero means 64-bit.
	View types.View

	// Logger receives debug records for each lookup.
	// If nil, the process-wide logger is used.
	Logger *slog.Logger
}

// Registry reads values from the live Windows registry.
type Registry struct {
	view types.View
	log  *slog.Logger
}

// NewRegistry returns a provider over the live registry.
func NewRegistry(opts RegistryOptions) *Registry {
	view := opts.View
	if view == 0 {
		view = types.View64
	}
	return &Registry{view: view, log: logger.Or(opts.Logger)}
}
