package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/internal/config"
	"github.com/joshuapare/regkit/internal/logger"
	"github.com/joshuapare/regkit/pkg/reg"
)

var (
	// Global flags
	verbose  bool
	quiet    bool
	jsonOut  bool
	cfgPath  string
	logLevel string

	// cfg is loaded before every command runs.
	cfg = config.Default()

	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "regctl",
	Short: "Parse, check and import Windows .reg files",
	Long: `regctl reads Windows Registry Editor (.reg) files, checks whether the
values they set are already present in the registry, and imports them.

An import only runs when the registry differs from the file, so regctl can
be called on every boot or login without rewriting unchanged keys.`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output and debug logs")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&cfgPath, "config", "", "Config file (default $HOME/.regkit/config.yaml)")
	rootCmd.PersistentFlags().
		StringVar(&logLevel, "log-level", "", "Log to stderr at this level (debug, info, warn, error)")
}

// exitError carries a process exit code through cobra.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	code := 1
	var ee *exitError
	if errors.As(err, &ee) {
		code = ee.code
		err = ee.err
	}
	if err != nil {
		logger.Error("command failed", "err", err, "exit", code)
		printError("%v\n", err)
	}
	os.Exit(code)
}

// setup loads the config file and starts logging.
func setup(cmd *cobra.Command, args []string) error {
	path := cfgPath
	if path == "" {
		path = config.DefaultPath()
	}
	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = loaded

	level := cfg.Log.Level
	if logLevel != "" {
		level = logLevel
	}
	if verbose {
		level = "debug"
	}
	lvl, err := logger.ParseLevel(level)
	if err != nil {
		return err
	}

	closeLog, err = logger.Init(logger.Options{
		Enabled: verbose || logLevel != "" || cfg.Log.File != "",
		Level:   lvl,
		JSON:    strings.EqualFold(cfg.Log.Format, "json"),
		File:    cfg.Log.File,
	})
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "path", path, "view", cfg.View, "encoding", cfg.Encoding, "limits", cfg.Limits)
	return nil
}

// parseOptions returns parse settings from the config, overridden by a
// non-empty encoding flag.
func parseOptions(encoding string) reg.ParseOptions {
	if encoding == "" {
		encoding = cfg.Encoding
	}
	return reg.ParseOptions{InputEncoding: encoding, Logger: logger.L}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
