// Package config loads regctl settings from an optional YAML file.
//
// Example ~/.regkit/config.yaml:
//
//	encoding: auto
//	view: "64"
//	reg_exe: C:\Windows\System32\reg.exe
//	limits: strict
//	aliases:
//	  HKEY_USERS: HKU
//	log:
//	  level: debug
//	  format: json
//	  file: C:\ProgramData\regkit\regctl.log
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/regkit/pkg/ast"
	"github.com/joshuapare/regkit/pkg/types"
)

// DefaultRegExe is the import command used when none is configured.
const DefaultRegExe = "reg.exe"

// Config holds regctl settings.
type Config struct {
	// Encoding is the input encoding used when a file has no byte order mark.
	Encoding string `yaml:"encoding"`

	// View is the registry view imports target: "32" or "64".
	View string `yaml:"view"`

	// RegExe is the path to reg.exe.
	RegExe string `yaml:"reg_exe"`

	// Limits selects the registry limits a file must satisfy before import:
	// default, relaxed or strict.
	Limits string `yaml:"limits"`

	// Aliases are extra hive name rewrites applied before lookups,
	// merged over the built-in HKEY_LOCAL_MACHINE and HKEY_CURRENT_USER ones.
	Aliases map[string]string `yaml:"aliases"`

	Log Log `yaml:"log"`
}

// Log configures logging.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
	File   string `yaml:"file"`
}

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		Encoding: "auto",
		View:     "64",
		RegExe:   DefaultRegExe,
		Limits:   "default",
		Log:      Log{Level: "info", Format: "text"},
	}
}

// DefaultPath returns $HOME/.regkit/config.yaml, or "" if the home
// directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".regkit", "config.yaml")
}

// Load reads the YAML file at path over the defaults.
// A missing file is not an error; the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if _, err := types.ParseView(c.View); err != nil {
		return err
	}
	if _, err := parseLimits(c.Limits); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid log format %q (want text or json)", c.Log.Format)
	}
	return nil
}

// RegistryView returns the parsed View setting.
func (c *Config) RegistryView() types.View {
	v, err := types.ParseView(c.View)
	if err != nil {
		return types.View64
	}
	return v
}

// RegistryLimits returns the limits preset named by the Limits setting.
func (c *Config) RegistryLimits() ast.Limits {
	l, err := parseLimits(c.Limits)
	if err != nil {
		return ast.DefaultLimits()
	}
	return l
}

func parseLimits(name string) (ast.Limits, error) {
	switch strings.ToLower(name) {
	case "", "default":
		return ast.DefaultLimits(), nil
	case "relaxed":
		return ast.RelaxedLimits(), nil
	case "strict":
		return ast.StrictLimits(), nil
	default:
		return ast.Limits{}, fmt.Errorf("invalid limits %q (want default, relaxed or strict)", name)
	}
}
