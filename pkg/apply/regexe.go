package apply

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joshuapare/regkit/internal/config"
	"github.com/joshuapare/regkit/internal/logger"
	"github.com/joshuapare/regkit/pkg/types"
)

// Runner executes a command and returns its combined output.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// ExecRunner runs commands with os/exec.
func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// RegExeOptions configures a RegExe applier.
type RegExeOptions struct {
	// Path is the reg.exe binary. Default: config.DefaultRegExe.
	Path string

	// Runner executes reg.exe. Default: ExecRunner.
	Runner Runner

	// Logger receives one record per import.
	// If nil, the process-wide logger is used.
	Logger *slog.Logger
}

// RegExe imports files with "reg.exe import <file> /reg:32|64".
type RegExe struct {
	path string
	run  Runner
	log  *slog.Logger
}

var _ FileApplier = (*RegExe)(nil)

// NewRegExe returns a FileApplier backed by reg.exe.
func NewRegExe(opts RegExeOptions) *RegExe {
	r := &RegExe{path: opts.Path, run: opts.Runner, log: logger.Or(opts.Logger)}
	if r.path == "" {
		r.path = config.DefaultRegExe
	}
	if r.run == nil {
		r.run = ExecRunner
	}
	return r
}

// Args returns the reg.exe arguments used to import path into view.
func Args(path string, view types.View) []string {
	return []string{"import", path, fmt.Sprintf("/reg:%d", int(view))}
}

// ApplyFile implements FileApplier.
func (r *RegExe) ApplyFile(ctx context.Context, path string, view types.View) error {
	if err := checkFile(path); err != nil {
		return err
	}
	if view != types.View32 && view != types.View64 {
		return fmt.Errorf("invalid registry view %d", int(view))
	}

	runID := uuid.NewString()
	log := r.log.With("run", runID, "file", path, "view", view.String())
	log.Info("importing .reg file", "command", r.path)

	start := time.Now()
	out, err := r.run(ctx, r.path, Args(path, view)...)
	if err != nil {
		msg := strings.TrimSpace(string(out))
		log.Error("import failed", "err", err, "output", msg)
		if msg != "" {
			return fmt.Errorf("%s import %s: %w: %s", r.path, path, err, msg)
		}
		return fmt.Errorf("%s import %s: %w", r.path, path, err)
	}
	log.Info("import finished", "elapsed", time.Since(start))
	return nil
}
