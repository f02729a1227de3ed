package cli

import (
	"reflect"
	"testing"
)

// MockRegistryChecker provides a mock implementation for testing.
type MockRegistryChecker struct {
	KnownCommands map[string]bool
	BoolFlags     map[string]bool
}

// CommandExists checks if a command name exists in the mock registry.
func (m MockRegistryChecker) CommandExists(name string) bool {
	_, exists := m.KnownCommands[name]
	return exists
}

// IsBoolFlag reports whether name never takes a value.
func (m MockRegistryChecker) IsBoolFlag(name string) bool {
	return m.BoolFlags[name]
}

// TestParseCommandLineArgs tests the argument parser.
func TestParseCommandLineArgs(t *testing.T) {
	mockRegistry := MockRegistryChecker{
		KnownCommands: map[string]bool{
			"groups":      true,
			"copy":        true,
			"link":        true,
			"config set":  true,
			"config get":  true,
			"config list": true,
		},
		BoolFlags: map[string]bool{"open": true, "print": true, "p": true},
	}

	testCases := []struct {
		name     string
		args     []string
		expected CommandArgs
	}{
		{
			name: "No Args",
			args: []string{},
			expected: CommandArgs{
				Variables: []string{},
				Flags:     map[string]string{},
				BoolFlags: map[string]bool{},
			},
		},
		{
			name: "Version Flag",
			args: []string{"--version"},
			expected: CommandArgs{
				VersionRequested: true,
				Variables:        []string{},
				Flags:            map[string]string{},
				BoolFlags:        map[string]bool{},
			},
		},
		{
			name: "General Help Flag",
			args: []string{"--help"},
			expected: CommandArgs{
				HelpRequested: true,
				Variables:     []string{},
				Flags:         map[string]string{},
				BoolFlags:     map[string]bool{"help": true},
			},
		},
		{
			name: "Command Specific Help",
			args: []string{"groups", "--help"},
			expected: CommandArgs{
				CommandName:   "groups",
				HelpRequested: true,
				Variables:     []string{},
				Flags:         map[string]string{},
				BoolFlags:     map[string]bool{"help": true},
			},
		},
		{
			name: "Multi-word Command Specific Help",
			args: []string{"config", "set", "--help"},
			expected: CommandArgs{
				CommandName:   "config set",
				HelpRequested: true,
				Variables:     []string{},
				Flags:         map[string]string{},
				BoolFlags:     map[string]bool{"help": true},
			},
		},
		{
			name: "Command With Variables",
			args: []string{"copy", "jugadores.csv", "3"},
			expected: CommandArgs{
				CommandName: "copy",
				Variables:   []string{"jugadores.csv", "3"},
				Flags:       map[string]string{},
				BoolFlags:   map[string]bool{},
			},
		},
		{
			name: "Bool Flag Before Variables",
			args: []string{"link", "--open", "jugadores.csv", "2"},
			expected: CommandArgs{
				CommandName: "link",
				Variables:   []string{"jugadores.csv", "2"},
				Flags:       map[string]string{},
				BoolFlags:   map[string]bool{"open": true},
			},
		},
		{
			name: "Short Bool Flag Before Variables",
			args: []string{"copy", "-p", "jugadores.csv", "1"},
			expected: CommandArgs{
				CommandName: "copy",
				Variables:   []string{"jugadores.csv", "1"},
				Flags:       map[string]string{},
				BoolFlags:   map[string]bool{"p": true},
			},
		},
		{
			name: "Debug Flag Is Global",
			args: []string{"groups", "--debug", "jugadores.csv"},
			expected: CommandArgs{
				CommandName:    "groups",
				DebugRequested: true,
				Variables:      []string{"jugadores.csv"},
				Flags:          map[string]string{},
				BoolFlags:      map[string]bool{},
			},
		},
		{
			name: "Multi-word Command with Variables",
			args: []string{"config", "set", "page_size", "5"},
			expected: CommandArgs{
				CommandName: "config set",
				Variables:   []string{"page_size", "5"},
				Flags:       map[string]string{},
				BoolFlags:   map[string]bool{},
			},
		},
		{
			name: "Flag with Space Value",
			args: []string{"groups", "jugadores.csv", "--column", "equipo"},
			expected: CommandArgs{
				CommandName: "groups",
				Variables:   []string{"jugadores.csv"},
				Flags:       map[string]string{"column": "equipo"},
				BoolFlags:   map[string]bool{},
			},
		},
		{
			name: "Flag with Equals Value",
			args: []string{"groups", "--column=equipo", "jugadores.csv"},
			expected: CommandArgs{
				CommandName: "groups",
				Variables:   []string{"jugadores.csv"},
				Flags:       map[string]string{"column": "equipo"},
				BoolFlags:   map[string]bool{},
			},
		},
		{
			name: "Combined Short Flags",
			args: []string{"cmd", "-abc", "valueForC"},
			expected: CommandArgs{
				CommandName: "",
				Variables:   []string{"cmd"},
				Flags:       map[string]string{"c": "valueForC"},
				BoolFlags:   map[string]bool{"a": true, "b": true},
			},
		},
		{
			name: "Duplicate Flag",
			args: []string{"copy", "--print", "--print"},
			expected: CommandArgs{
				CommandName: "copy",
				Variables:   []string{},
				Flags:       map[string]string{},
				BoolFlags:   map[string]bool{"print": true},
				Errors:      []error{nil},
			},
		},
		{
			name: "Unknown Command",
			args: []string{"unknowncmd", "arg1"},
			expected: CommandArgs{
				CommandName: "",
				Variables:   []string{"unknowncmd", "arg1"},
				Flags:       map[string]string{},
				BoolFlags:   map[string]bool{},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := ParseCommandLineArgs(tc.args, mockRegistry)

			if actual.CommandName != tc.expected.CommandName {
				t.Errorf("CommandName mismatch: expected %q, got %q", tc.expected.CommandName, actual.CommandName)
			}
			if !reflect.DeepEqual(actual.Variables, tc.expected.Variables) {
				t.Errorf("Variables mismatch: expected %v, got %v", tc.expected.Variables, actual.Variables)
			}
			if !reflect.DeepEqual(actual.Flags, tc.expected.Flags) {
				t.Errorf("Flags mismatch: expected %v, got %v", tc.expected.Flags, actual.Flags)
			}
			if !reflect.DeepEqual(actual.BoolFlags, tc.expected.BoolFlags) {
				t.Errorf("BoolFlags mismatch: expected %v, got %v", tc.expected.BoolFlags, actual.BoolFlags)
			}
			if actual.HelpRequested != tc.expected.HelpRequested {
				t.Errorf("HelpRequested mismatch: expected %t, got %t", tc.expected.HelpRequested, actual.HelpRequested)
			}
			if actual.VersionRequested != tc.expected.VersionRequested {
				t.Errorf("VersionRequested mismatch: expected %t, got %t", tc.expected.VersionRequested, actual.VersionRequested)
			}
			if actual.DebugRequested != tc.expected.DebugRequested {
				t.Errorf("DebugRequested mismatch: expected %t, got %t", tc.expected.DebugRequested, actual.DebugRequested)
			}
			if len(actual.Errors) != len(tc.expected.Errors) {
				t.Errorf("Errors length mismatch: expected %d, got %d (Errors: %v)", len(tc.expected.Errors), len(actual.Errors), actual.Errors)
			}
		})
	}
}
