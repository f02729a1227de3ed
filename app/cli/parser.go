package cli

import (
	"fmt"
	"strings"
)

// CommandRegistryChecker reports whether a command name exists.
// It keeps the parser free of a dependency on the commands package.
type CommandRegistryChecker interface {
	CommandExists(name string) bool
}

// BoolFlagChecker is optionally implemented by a CommandRegistryChecker.
// Flags it names never consume the following argument as their value.
type BoolFlagChecker interface {
	IsBoolFlag(name string) bool
}

// ArgDef defines an expected positional argument.
type ArgDef struct {
	Name        string
	Description string
	Required    bool
}

// FlagDef defines an expected flag.
type FlagDef struct {
	Name        string // long name, e.g. "print"
	ShortName   string // short name, e.g. "p"; empty if none
	Description string
	HasValue    bool // --flag=value / --flag value when true, bare --flag otherwise
	Required    bool
}

// CommandArgs holds structured information parsed from command-line arguments.
type CommandArgs struct {
	RawArgs          []string
	CommandName      string            // e.g. "groups", "config set"
	Variables        []string          // positional arguments after the command name
	Flags            map[string]string // --output=./path -> map["output"]="./path"
	BoolFlags        map[string]bool   // --print -> map["print"]=true
	HelpRequested    bool
	VersionRequested bool
	DebugRequested   bool
	Errors           []error
}

// Debug toggle controlled by --debug. Other packages can query this.
var debugEnabled bool

// SetDebugEnabled enables or disables debug logging globally for this process.
func SetDebugEnabled(on bool) { debugEnabled = on }

// IsDebugEnabled reports whether debug logging is currently enabled.
func IsDebugEnabled() bool { return debugEnabled }

// ParseCommandLineArgs processes the raw command-line arguments using a command registry checker.
func ParseCommandLineArgs(rawArgs []string, registry CommandRegistryChecker) CommandArgs {
	parsed := CommandArgs{
		RawArgs:   rawArgs,
		Variables: make([]string, 0),
		Flags:     make(map[string]string),
		BoolFlags: make(map[string]bool),
		Errors:    make([]error, 0),
	}
	boolFlags, _ := registry.(BoolFlagChecker)
	isBool := func(name string) bool {
		return boolFlags != nil && boolFlags.IsBoolFlag(name)
	}

	// Global flags are recognised anywhere on the line.
	for _, arg := range rawArgs {
		switch arg {
		case "--help", "-h":
			parsed.HelpRequested = true
		case "--version":
			parsed.VersionRequested = true
		case "--debug":
			parsed.DebugRequested = true
		}
	}

	// --- Stage 1: find the command name (one or two words) ---
	first, second := -1, -1
	for i, arg := range rawArgs {
		if strings.HasPrefix(arg, "-") {
			continue
		}
		if first == -1 {
			first = i
		} else {
			second = i
			break
		}
	}

	rest := rawArgs
	drop := func(idx ...int) []string {
		out := make([]string, 0, len(rawArgs))
	outer:
		for i, arg := range rawArgs {
			for _, d := range idx {
				if i == d {
					continue outer
				}
			}
			out = append(out, arg)
		}
		return out
	}
	switch {
	case first != -1 && second != -1 && registry.CommandExists(rawArgs[first]+" "+rawArgs[second]):
		parsed.CommandName = rawArgs[first] + " " + rawArgs[second]
		rest = drop(first, second)
	case first != -1 && registry.CommandExists(rawArgs[first]):
		parsed.CommandName = rawArgs[first]
		rest = drop(first)
	}

	// --- Stage 2: flags and variables ---
	for i := 0; i < len(rest); i++ {
		arg := rest[i]
		if arg == "--version" || arg == "--debug" {
			continue
		}

		if strings.HasPrefix(arg, "--") {
			flagName := strings.TrimPrefix(arg, "--")
			flagValue := ""
			hasValue := false

			if name, value, ok := strings.Cut(flagName, "="); ok {
				flagName, flagValue, hasValue = name, value, true
			} else if !isBool(flagName) && i+1 < len(rest) && !strings.HasPrefix(rest[i+1], "-") {
				flagValue = rest[i+1]
				hasValue = true
				i++
			}

			if hasValue {
				if _, exists := parsed.Flags[flagName]; exists {
					parsed.Errors = append(parsed.Errors, fmt.Errorf("flag provided more than once: --%s", flagName))
				}
				parsed.Flags[flagName] = flagValue
			} else {
				if _, exists := parsed.BoolFlags[flagName]; exists {
					parsed.Errors = append(parsed.Errors, fmt.Errorf("boolean flag provided more than once: --%s", flagName))
				}
				parsed.BoolFlags[flagName] = true
			}
			continue
		}

		if strings.HasPrefix(arg, "-") {
			flagChars := strings.TrimPrefix(arg, "-")
			if flagChars == "" {
				parsed.Errors = append(parsed.Errors, fmt.Errorf("invalid flag format: %s", arg))
				continue
			}

			potentialValue := ""
			if i+1 < len(rest) && !strings.HasPrefix(rest[i+1], "-") {
				potentialValue = rest[i+1]
			}
			valueConsumed := false
			for j, flagChar := range flagChars {
				flagName := string(flagChar)
				if j == len(flagChars)-1 && potentialValue != "" && !isBool(flagName) {
					if _, exists := parsed.Flags[flagName]; exists {
						parsed.Errors = append(parsed.Errors, fmt.Errorf("flag provided more than once: -%s", flagName))
					}
					parsed.Flags[flagName] = potentialValue
					valueConsumed = true
				} else {
					if _, exists := parsed.BoolFlags[flagName]; exists {
						parsed.Errors = append(parsed.Errors, fmt.Errorf("boolean flag provided more than once: -%s", flagName))
					}
					parsed.BoolFlags[flagName] = true
				}
			}
			if valueConsumed {
				i++
			}
			continue
		}

		parsed.Variables = append(parsed.Variables, arg)
	}

	return parsed
}
