package main

import (
	"testing"
)

var settingsLines = []string{
	"Windows Registry Editor Version 5.00",
	"",
	`[HKEY_CURRENT_USER\Software\Example]`,
	`@="default"`,
	`"Theme"="dark"`,
	`"Size"=dword:0000000c`,
	`"Paths"=hex(7):61,00,00,00,62,00,00,00,00,00`,
	`"Odd"=weird:thing`,
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name           string
		lines          []string
		json           bool
		wantErr        bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:  "text output",
			lines: settingsLines,
			wantContain: []string{
				`[HKEY_CURRENT_USER\Software\Example]`,
				"@ (REG_SZ) = default",
				"Theme (REG_SZ) = dark",
				"Size (REG_DWORD) = 12 (0x0000000c)",
				"Paths (REG_MULTI_SZ) = a, b",
				`unknown type tag "weird"`,
			},
		},
		{
			name:           "json output",
			lines:          settingsLines,
			json:           true,
			wantContain:    []string{`"path": "HKEY_CURRENT_USER\\Software\\Example"`, `"kind": "dword"`, `"anomalies"`},
			wantNotContain: []string{"[HKEY_CURRENT_USER"},
		},
		{
			name:    "assignment before section",
			lines:   []string{`"Orphan"="x"`},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetGlobals(t)
			jsonOut = tt.json
			path := writeRegFile(t, "test.reg", tt.lines...)

			output, err := captureOutput(t, func() error {
				return runParse([]string{path})
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runParse() error = %v, wantErr %v\nOutput: %s", err, tt.wantErr, output)
				return
			}
			if tt.json && !tt.wantErr {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestParseCommand_MissingFile(t *testing.T) {
	resetGlobals(t)
	_, err := captureOutput(t, func() error {
		return runParse([]string{"does-not-exist.reg"})
	})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
