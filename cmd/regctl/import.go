package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/internal/logger"
	"github.com/joshuapare/regkit/pkg/apply"
	"github.com/joshuapare/regkit/pkg/integrity"
	"github.com/joshuapare/regkit/pkg/types"
)

var (
	importArch     string
	importForce    bool
	importAPI      bool
	importEncoding string
)

// importRunner executes reg.exe.
var importRunner apply.Runner = apply.ExecRunner

func init() {
	cmd := newImportCmd()
	cmd.Flags().StringVar(&importArch, "arch", "", "Registry view to import into: 32 or 64 (default from config)")
	cmd.Flags().BoolVarP(&importForce, "force", "f", false, "Import even if the registry already matches")
	cmd.Flags().BoolVar(&importAPI, "api", false, "Write values through the registry API instead of reg.exe")
	cmd.Flags().StringVar(&importEncoding, "encoding", "", "Input encoding when the file has no BOM")
	rootCmd.AddCommand(cmd)
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <reg-file>",
		Short: "Import a .reg file unless the registry already matches it",
		Long: `The import command checks a .reg file against the registry and imports
it only if some value is missing or different.

By default the file is handed to "reg.exe import" with /reg:32 or /reg:64.
With --api the values are written through the registry API instead.

Examples:
  # Import into the 64-bit view if anything changed
  regctl import settings.reg

  # Import into the 32-bit view even if nothing changed
  regctl import settings.reg --arch 32 --force`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), args)
		},
	}
}

func runImport(ctx context.Context, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	path := args[0]

	view := cfg.RegistryView()
	if importArch != "" {
		v, err := types.ParseView(importArch)
		if err != nil {
			return err
		}
		view = v
	}
	opts := parseOptions(importEncoding)

	var applier apply.FileApplier = apply.NewRegExe(apply.RegExeOptions{
		Path:   cfg.RegExe,
		Runner: importRunner,
		Logger: logger.L,
	})
	if importAPI {
		applier = apply.ParsedFile{
			Applier: apply.NewRegistry(apply.RegistryOptions{Limits: cfg.RegistryLimits(), Logger: logger.L}),
			Parse:   opts,
		}
	}

	printVerbose("  Input: %s\n", path)
	printVerbose("  View:  %s\n", view)

	if importForce {
		logger.Warn("importing without integrity check", "file", path, "view", view.String())
		if err := applier.ApplyFile(ctx, path, view); err != nil {
			return err
		}
		printInfo("✓ Imported %s into the %s registry\n", path, view)
		return nil
	}

	gated := &apply.Gated{
		Checker: integrity.New(liveProvider(view), integrity.Options{Aliases: cfg.Aliases, Logger: logger.L}),
		Applier: applier,
		Parse:   opts,
		Limits:  cfg.RegistryLimits(),
		Logger:  logger.L,
	}
	applied, err := gated.ApplyFile(ctx, path, view)
	if err != nil {
		return err
	}
	if !applied {
		printInfo("Registry already matches %s, nothing to import (use --force to import anyway)\n", path)
		return nil
	}
	logger.Info("import complete", "file", path, "view", view.String(), "gated", true)
	printInfo("✓ Imported %s into the %s registry\n", path, view)
	return nil
}
