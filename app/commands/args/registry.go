package args

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Guerrilla-Interactive/tenis-grupos/app/cli"
	"github.com/Guerrilla-Interactive/tenis-grupos/app/roster"
	"github.com/Guerrilla-Interactive/tenis-grupos/app/share"
	config "github.com/Guerrilla-Interactive/tenis-grupos/internal"
	"github.com/cockroachdb/errors"
)

// ArgDef is an alias for cli.ArgDef.
type ArgDef = cli.ArgDef

// FlagDef is an alias for cli.FlagDef.
type FlagDef = cli.FlagDef

// Runtime is what a command may touch while executing.
type Runtime struct {
	Out       io.Writer
	Config    *config.Config
	Clipboard share.Clipboard
	Opener    share.Opener
	Logger    *slog.Logger
	// SaveConfig persists Config; config set calls it.
	SaveConfig func(config.Config) error
}

// Command represents a CLI command that can be executed directly.
type Command interface {
	// Name returns the command's name (e.g., "groups", "config set").
	Name() string
	// Description returns a brief help description for the command.
	Description() string
	// Execute runs the command logic with the parsed arguments.
	Execute(rt *Runtime, args cli.CommandArgs) error
	// Usage returns a brief usage string (e.g., "<file.csv> <grupo>").
	Usage() string
	// ExpectedArgs returns definitions for expected positional arguments.
	ExpectedArgs() []ArgDef
	// ExpectedFlags returns definitions for expected flags.
	ExpectedFlags() []FlagDef
}

// commandRegistry holds all registered CLI commands.
var commandRegistry = make(map[string]Command)

// RegisterCommand adds a command to the registry. Call it from init().
func RegisterCommand(cmd Command) {
	if _, exists := commandRegistry[cmd.Name()]; exists {
		panic(fmt.Sprintf("Command already registered: %s", cmd.Name()))
	}
	commandRegistry[cmd.Name()] = cmd
}

// GetCommand retrieves a command from the registry by its name.
func GetCommand(name string) (Command, bool) {
	cmd, found := commandRegistry[name]
	return cmd, found
}

// CommandExists checks if a command with the given name is registered.
func CommandExists(name string) bool {
	_, found := commandRegistry[name]
	return found
}

// GetAllCommands returns all registered commands sorted by name.
func GetAllCommands() []Command {
	cmds := make([]Command, 0, len(commandRegistry))
	for _, cmd := range commandRegistry {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })
	return cmds
}

// Subcommands returns the commands grouped under prefix, e.g. "config get"
// and "config set" for "config", sorted by name.
func Subcommands(prefix string) []Command {
	var subs []Command
	for _, cmd := range GetAllCommands() {
		if strings.HasPrefix(cmd.Name(), prefix+" ") {
			subs = append(subs, cmd)
		}
	}
	return subs
}

// CheckRosterArg reports whether the single argument given without a
// command can be opened as a roster. Anything that is neither a .csv path
// nor an existing file is treated as a mistyped command.
func CheckRosterArg(arg string) error {
	if subs := Subcommands(arg); len(subs) > 0 {
		names := make([]string, len(subs))
		for i, cmd := range subs {
			names[i] = cmd.Name()
		}
		return errors.Newf("%q needs a subcommand: %s", arg, strings.Join(names, ", "))
	}
	if strings.EqualFold(filepath.Ext(arg), ".csv") {
		return nil
	}
	if info, err := os.Stat(arg); err == nil && info.Mode().IsRegular() {
		return nil
	}
	return errors.Newf("unknown command %q", arg)
}

// Checker adapts the registry to the cli parser.
type Checker struct{}

// CommandExists implements cli.CommandRegistryChecker.
func (Checker) CommandExists(name string) bool { return CommandExists(name) }

// IsBoolFlag implements cli.BoolFlagChecker using the flags every
// registered command declares without a value.
func (Checker) IsBoolFlag(name string) bool {
	for _, cmd := range commandRegistry {
		for _, f := range cmd.ExpectedFlags() {
			if !f.HasValue && (f.Name == name || f.ShortName == name) {
				return true
			}
		}
	}
	return false
}

// requireArgs checks that the positional arguments marked required are present.
func requireArgs(cmd Command, args cli.CommandArgs) error {
	for i, def := range cmd.ExpectedArgs() {
		if def.Required && i >= len(args.Variables) {
			return errors.Newf("missing required argument: %s (usage: %s %s)", def.Name, cmd.Name(), cmd.Usage())
		}
	}
	return nil
}

// boolFlag reports whether the long or short form of a flag was given.
func boolFlag(args cli.CommandArgs, def FlagDef) bool {
	return args.BoolFlags[def.Name] || (def.ShortName != "" && args.BoolFlags[def.ShortName])
}

// UserFacing renders a command error for the terminal. Roster load
// failures get the same wording the interactive screens use.
func UserFacing(err error) string {
	if errors.Is(err, roster.ErrParseFailure) || errors.Is(err, roster.ErrMissingColumns) || errors.Is(err, roster.ErrNoRows) {
		return roster.UserMessage(err)
	}
	return err.Error()
}
