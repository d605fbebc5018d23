package main

import (
	"context"
	"strings"
	"testing"

	"github.com/joshuapare/regkit/pkg/ast"
	"github.com/joshuapare/regkit/pkg/provider"
	"github.com/joshuapare/regkit/pkg/types"
)

func TestImportCommand(t *testing.T) {
	lines := []string{
		"Windows Registry Editor Version 5.00",
		`[HKEY_LOCAL_MACHINE\Software\Example]`,
		`"Version"="2.0"`,
	}

	upToDate := provider.NewMap()
	upToDate.Set(`HKLM\Software\Example`, "Version", types.StringValue("2.0"))

	tests := []struct {
		name        string
		provider    *provider.Map
		arch        string
		force       bool
		wantCalls   int
		wantArgs    []string
		wantContain []string
	}{
		{
			name:        "imports when missing",
			provider:    provider.NewMap(),
			wantCalls:   1,
			wantArgs:    []string{"reg.exe", "import", "", "/reg:64"},
			wantContain: []string{"✓ Imported"},
		},
		{
			name:        "skips when up to date",
			provider:    upToDate,
			wantCalls:   0,
			wantContain: []string{"nothing to import"},
		},
		{
			name:        "force imports anyway",
			provider:    upToDate,
			force:       true,
			arch:        "32",
			wantCalls:   1,
			wantArgs:    []string{"reg.exe", "import", "", "/reg:32"},
			wantContain: []string{"32-bit registry"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetGlobals(t)
			useProvider(tt.provider)
			runner := &recordingRunner{}
			importRunner = runner.run
			importArch = tt.arch
			importForce = tt.force
			path := writeRegFile(t, "settings.reg", lines...)

			output, err := captureOutput(t, func() error {
				return runImport(context.Background(), []string{path})
			})
			if err != nil {
				t.Fatalf("runImport() error = %v\nOutput: %s", err, output)
			}

			if len(runner.calls) != tt.wantCalls {
				t.Fatalf("reg.exe called %d times, want %d", len(runner.calls), tt.wantCalls)
			}
			if tt.wantCalls > 0 {
				want := append([]string(nil), tt.wantArgs...)
				want[2] = path
				for i := range want {
					if runner.calls[0][i] != want[i] {
						t.Errorf("arg %d = %q, want %q", i, runner.calls[0][i], want[i])
					}
				}
			}
			assertContains(t, output, tt.wantContain)
		})
	}
}

func TestImportCommand_ConfiguredRegExe(t *testing.T) {
	resetGlobals(t)
	useProvider(provider.NewMap())
	runner := &recordingRunner{}
	importRunner = runner.run
	cfg.RegExe = `C:\Windows\SysWOW64\reg.exe`
	path := writeRegFile(t, "settings.reg", `[HKEY_CURRENT_USER\X]`, `"A"="1"`)

	if _, err := captureOutput(t, func() error {
		return runImport(context.Background(), []string{path})
	}); err != nil {
		t.Fatalf("runImport() error = %v", err)
	}
	if len(runner.calls) != 1 || runner.calls[0][0] != cfg.RegExe {
		t.Errorf("calls = %v, want one call to %s", runner.calls, cfg.RegExe)
	}
}

func TestImportCommand_BadArch(t *testing.T) {
	resetGlobals(t)
	importArch = "128"
	path := writeRegFile(t, "settings.reg", `[HKEY_CURRENT_USER\X]`, `"A"="1"`)

	_, err := captureOutput(t, func() error {
		return runImport(context.Background(), []string{path})
	})
	if err == nil {
		t.Fatal("expected error for invalid --arch")
	}
}

func TestImportCommand_ConfiguredLimits(t *testing.T) {
	resetGlobals(t)
	useProvider(provider.NewMap())
	runner := &recordingRunner{}
	importRunner = runner.run
	cfg.Limits = "strict"
	path := writeRegFile(t, "settings.reg",
		`[HKEY_CURRENT_USER\X]`,
		`"Big"="`+strings.Repeat("x", 40000)+`"`,
	)

	_, err := captureOutput(t, func() error {
		return runImport(context.Background(), []string{path})
	})
	if ast.LimitViolation(err) == nil {
		t.Fatalf("expected a limit violation, got %v", err)
	}
	if len(runner.calls) != 0 {
		t.Errorf("reg.exe called %d times, want 0", len(runner.calls))
	}

	cfg.Limits = "default"
	if _, err := captureOutput(t, func() error {
		return runImport(context.Background(), []string{path})
	}); err != nil {
		t.Fatalf("runImport() with default limits error = %v", err)
	}
	if len(runner.calls) != 1 {
		t.Errorf("reg.exe called %d times, want 1", len(runner.calls))
	}
}
