package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/regkit/pkg/ast"
	"github.com/joshuapare/regkit/pkg/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
encoding: windows-1252
view: "32"
aliases:
  HKEY_USERS: HKU
log:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "windows-1252", cfg.Encoding)
	assert.Equal(t, types.View32, cfg.RegistryView())
	assert.Equal(t, DefaultRegExe, cfg.RegExe, "unset keys keep their defaults")
	assert.Equal(t, map[string]string{"HKEY_USERS": "HKU"}, cfg.Aliases)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestRegistryLimits(t *testing.T) {
	tests := []struct {
		setting string
		want    ast.Limits
	}{
		{"", ast.DefaultLimits()},
		{"default", ast.DefaultLimits()},
		{"relaxed", ast.RelaxedLimits()},
		{"Strict", ast.StrictLimits()},
	}
	for _, tt := range tests {
		cfg := Default()
		cfg.Limits = tt.setting
		require.NoError(t, cfg.Validate(), tt.setting)
		assert.Equal(t, tt.want, cfg.RegistryLimits(), tt.setting)
	}

	cfg, err := Load(writeConfig(t, "limits: relaxed\n"))
	require.NoError(t, err)
	assert.Equal(t, ast.RelaxedLimits(), cfg.RegistryLimits())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "view: [unclosed"},
		{"bad view", `view: "16"`},
		{"bad log format", "log:\n  format: xml\n"},
		{"bad limits", "limits: huge\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}
