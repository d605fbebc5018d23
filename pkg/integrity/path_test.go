package integrity

import "testing"

func TestAliases_Translate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "HKEY_LOCAL_MACHINE to HKLM",
			input:    `HKEY_LOCAL_MACHINE\Software\X`,
			expected: `HKLM\Software\X`,
		},
		{
			name:     "HKEY_CURRENT_USER to HKCU",
			input:    `HKEY_CURRENT_USER\Software\Test`,
			expected: `HKCU\Software\Test`,
		},
		{
			name:     "case insensitive root",
			input:    `hkey_local_machine\SOFTWARE`,
			expected: `HKLM\SOFTWARE`,
		},
		{
			name:     "root only",
			input:    `HKEY_CURRENT_USER`,
			expected: `HKCU`,
		},
		{
			name:     "unrecognized hive passes through",
			input:    `HKEY_CLASSES_ROOT\.txt`,
			expected: `HKEY_CLASSES_ROOT\.txt`,
		},
		{
			name:     "already short",
			input:    `HKLM\Software`,
			expected: `HKLM\Software`,
		},
		{
			name:     "no hive",
			input:    `Software\Microsoft`,
			expected: `Software\Microsoft`,
		},
	}

	aliases := DefaultAliases()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := aliases.Translate(tt.input); got != tt.expected {
				t.Errorf("Translate(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestAliases_With(t *testing.T) {
	base := DefaultAliases()
	merged := base.With(map[string]string{"hkey_users": "HKU", "HKEY_LOCAL_MACHINE": "LM"})

	if got := merged.Translate(`HKEY_USERS\.DEFAULT`); got != `HKU\.DEFAULT` {
		t.Errorf("extra alias not applied: %q", got)
	}
	if got := merged.Translate(`HKEY_LOCAL_MACHINE\X`); got != `LM\X` {
		t.Errorf("override not applied: %q", got)
	}
	if got := base.Translate(`HKEY_LOCAL_MACHINE\X`); got != `HKLM\X` {
		t.Errorf("With modified its receiver: %q", got)
	}
}
