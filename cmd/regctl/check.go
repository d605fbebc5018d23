package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/internal/logger"
	"github.com/joshuapare/regkit/pkg/provider"
	"github.com/joshuapare/regkit/pkg/reg"
	"github.com/joshuapare/regkit/pkg/types"
)

// Exit codes of the check command.
const (
	exitInSync    = 0
	exitNotInSync = 1
	exitFailed    = 2
)

var (
	checkAgainst  string
	checkView     string
	checkEncoding string
)

// liveProvider returns the provider checks run against when no snapshot
// is given.
var liveProvider = func(view types.View) types.Provider {
	return provider.NewRegistry(provider.RegistryOptions{View: view, Logger: logger.L})
}

func init() {
	cmd := newCheckCmd()
	cmd.Flags().StringVar(&checkAgainst, "against", "", "Check against this .reg snapshot instead of the live registry")
	cmd.Flags().StringVar(&checkView, "view", "", "Registry view to read: 32 or 64 (default from config)")
	cmd.Flags().StringVar(&checkEncoding, "encoding", "", "Input encoding when a file has no BOM")
	rootCmd.AddCommand(cmd)
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <reg-file>",
		Short: "Check whether the registry already holds a .reg file's values",
		Long: `The check command compares every value in a .reg file with the
registry, in file order, and stops at the first one that is missing or
different.

Exit status is 0 when the registry matches, 1 when it does not, and 2 when
the check could not be completed.

Example:
  regctl check settings.reg
  regctl check settings.reg --view 32
  regctl check settings.reg --against exported.reg --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), args)
		},
	}
}

type jsonMismatch struct {
	Path   string `json:"path"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
	Want   string `json:"want"`
	Got    string `json:"got,omitempty"`
}

type jsonCheck struct {
	File     string        `json:"file"`
	InSync   bool          `json:"in_sync"`
	Checked  int           `json:"checked"`
	Mismatch *jsonMismatch `json:"mismatch,omitempty"`
}

func runCheck(ctx context.Context, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	path := args[0]

	view := cfg.RegistryView()
	if checkView != "" {
		v, err := types.ParseView(checkView)
		if err != nil {
			return &exitError{code: exitFailed, err: err}
		}
		view = v
	}

	p, err := checkProvider(view)
	if err != nil {
		return &exitError{code: exitFailed, err: err}
	}

	printVerbose("Checking %s against %s\n", path, providerName(view))
	report, err := reg.VerifyFile(ctx, path, p, reg.CheckOptions{
		Parse:   parseOptions(checkEncoding),
		Aliases: cfg.Aliases,
		Logger:  logger.L,
	})
	if err != nil {
		return &exitError{code: exitFailed, err: err}
	}

	if jsonOut {
		out := jsonCheck{File: path, InSync: report.InSync, Checked: report.Checked}
		if m := report.Mismatch; m != nil {
			out.Mismatch = &jsonMismatch{Path: m.Path, Name: m.Name, Reason: m.Reason.String(), Want: m.Want.Text}
			if m.Got != nil {
				out.Mismatch.Got = m.Got.Text
			}
		}
		if err := printJSON(out); err != nil {
			return &exitError{code: exitFailed, err: err}
		}
	} else if report.InSync {
		printInfo("✓ %s is in sync (%d values checked)\n", path, report.Checked)
	} else {
		printInfo("✗ %s is not in sync: %s\n", path, report.Mismatch)
	}

	if !report.InSync {
		return &exitError{code: exitNotInSync}
	}
	return nil
}

// checkProvider returns a snapshot provider when --against is set and the
// live registry otherwise.
func checkProvider(view types.View) (types.Provider, error) {
	if checkAgainst == "" {
		return liveProvider(view), nil
	}
	doc, err := reg.ParseFile(checkAgainst, parseOptions(checkEncoding))
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	return provider.FromDocument(doc), nil
}

func providerName(view types.View) string {
	if checkAgainst != "" {
		return checkAgainst
	}
	return "the " + view.String() + " registry"
}
