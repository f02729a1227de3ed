package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Guerrilla-Interactive/tenis-grupos/app"
	"github.com/Guerrilla-Interactive/tenis-grupos/app/cli"
	commands "github.com/Guerrilla-Interactive/tenis-grupos/app/commands/args"
	"github.com/Guerrilla-Interactive/tenis-grupos/app/logging"
	"github.com/Guerrilla-Interactive/tenis-grupos/app/screens"
	"github.com/Guerrilla-Interactive/tenis-grupos/app/session"
	"github.com/Guerrilla-Interactive/tenis-grupos/app/share"
	config "github.com/Guerrilla-Interactive/tenis-grupos/internal"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Version is set via linker flags during build.
var Version = "v0.3.0"

// ProgramModel wraps app.Model so we can hold Update logic in one place.
type ProgramModel struct {
	M app.Model
	// Initial runs alongside the file picker on the first frame, e.g. the
	// load of a roster passed on the command line.
	Initial tea.Cmd
}

// Init opens the file picker and runs Initial.
func (pm ProgramModel) Init() tea.Cmd {
	return tea.Batch(pm.M.FilePicker.Init(), pm.Initial)
}

// Update handles incoming Msgs (both from commands and user interaction).
func (pm ProgramModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typedMsg := msg.(type) {
	case screens.RosterLoadedMsg:
		var cmd tea.Cmd
		pm.M, cmd = screens.ApplyRosterLoaded(pm.M, typedMsg)
		return pm, cmd

	case screens.ActionDoneMsg:
		var cmd tea.Cmd
		pm.M, cmd = screens.ApplyActionDone(pm.M, typedMsg)
		return pm, cmd

	case screens.FeedbackExpiredMsg:
		pm.M = screens.ApplyFeedbackExpired(pm.M, typedMsg)
		return pm, nil

	case spinner.TickMsg:
		if pm.M.Session.Status != session.StateLoading {
			return pm, nil
		}
		var cmd tea.Cmd
		pm.M.Spinner, cmd = pm.M.Spinner.Update(typedMsg)
		return pm, cmd

	case tea.WindowSizeMsg:
		pm.M.TerminalWidth = typedMsg.Width
		pm.M.TerminalHeight = typedMsg.Height

	case tea.KeyMsg:
		if pm.M.CurrentScreen == app.ScreenGroups {
			var cmd tea.Cmd
			pm.M, cmd = screens.UpdateScreenGroups(pm.M, typedMsg)
			return pm, cmd
		}
	}

	// The file picker also consumes its own directory listing messages.
	var cmd tea.Cmd
	if pm.M.CurrentScreen == app.ScreenUpload {
		pm.M, cmd = screens.UpdateScreenUpload(pm.M, msg)
	} else if _, isKey := msg.(tea.KeyMsg); !isKey {
		pm.M.FilePicker, cmd = pm.M.FilePicker.Update(msg)
	}
	return pm, cmd
}

// View selects which screen's View function to call based on pm.M.CurrentScreen.
func (pm ProgramModel) View() string {
	switch pm.M.CurrentScreen {
	case app.ScreenGroups:
		return screens.ViewScreenGroups(pm.M)
	default:
		return screens.ViewScreenUpload(pm.M)
	}
}

func main() {
	args := os.Args[1:]
	parsedArgs := cli.ParseCommandLineArgs(args, commands.Checker{})
	cli.SetDebugEnabled(parsedArgs.DebugRequested)

	cfg, cfgErr := config.LoadConfig()
	if cfg.Debug {
		cli.SetDebugEnabled(true)
	}

	if len(parsedArgs.Errors) > 0 {
		fmt.Println("Error parsing arguments:")
		for _, err := range parsedArgs.Errors {
			fmt.Printf("  - %v\n", err)
		}
		os.Exit(1)
	}
	if parsedArgs.VersionRequested {
		fmt.Printf("tenis-grupos %s\n", Version)
		os.Exit(0)
	}
	if parsedArgs.HelpRequested {
		if parsedArgs.CommandName != "" {
			displayCommandHelp(parsedArgs.CommandName)
		} else {
			displayGeneralHelp()
		}
		os.Exit(0)
	}

	// --- Direct command execution ---
	if parsedArgs.CommandName != "" {
		logger := logging.New(os.Stderr, cli.IsDebugEnabled())
		if cfgErr != nil {
			logger.Warn("config not fully loaded", "err", cfgErr)
		}
		os.Exit(executeCommand(parsedArgs, &cfg, logger))
	}
	if len(parsedArgs.Variables) > 1 {
		fmt.Printf("Error: unknown command %q\n", parsedArgs.Variables[0])
		fmt.Println("Run `tenis-grupos --help` for usage.")
		os.Exit(1)
	}
	if len(parsedArgs.Variables) == 1 {
		if err := commands.CheckRosterArg(parsedArgs.Variables[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			fmt.Println("Run `tenis-grupos --help` for usage.")
			os.Exit(1)
		}
	}

	// --- Interactive mode ---
	os.Exit(runInteractive(cfg, cfgErr, parsedArgs.Variables))
}

func runInteractive(cfg config.Config, cfgErr error, variables []string) int {
	// The TUI owns the terminal, so logs go to a file next to the config.
	logger := logging.Discard()
	if dir, err := config.Dir(); err == nil {
		if fileLogger, f, err := logging.NewFile(dir, cli.IsDebugEnabled()); err == nil {
			defer f.Close()
			logger = fileLogger
		}
	}
	if cfgErr != nil {
		logger.Warn("config not fully loaded", "err", cfgErr)
	}

	pm := ProgramModel{M: app.NewModel(cfg, Version, logger)}
	if len(variables) == 1 {
		// `tenis-grupos jugadores.csv` opens straight on that roster.
		pm.M, pm.Initial = screens.StartUpload(pm.M, variables[0])
	}

	p := tea.NewProgram(pm, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		fmt.Println("Error running program:", err)
		return 1
	}

	// Remember the last roster and the preferred action for next time.
	if fm, ok := final.(ProgramModel); ok {
		if err := config.Remember(fm.M.Config.LastFile, fm.M.PreferredAction()); err != nil {
			logger.Warn("could not save config", "err", err)
		}
	}
	return 0
}

func executeCommand(parsedArgs cli.CommandArgs, cfg *config.Config, logger *slog.Logger) int {
	cmd, found := commands.GetCommand(parsedArgs.CommandName)
	if !found {
		fmt.Printf("Error: Unknown command '%s'\n", parsedArgs.CommandName)
		return 1
	}
	logger.Debug("executing command", "command", cmd.Name(), "variables", parsedArgs.Variables)

	rt := &commands.Runtime{
		Out:        os.Stdout,
		Config:     cfg,
		Clipboard:  share.SystemClipboard{},
		Opener:     share.BrowserOpener{},
		Logger:     logger,
		SaveConfig: config.SaveConfig,
	}
	if err := cmd.Execute(rt, parsedArgs); err != nil {
		logger.Debug("command failed", "command", cmd.Name(), "err", fmt.Sprintf("%+v", err))
		fmt.Fprintf(os.Stderr, "Error: %s\n", commands.UserFacing(err))
		return 1
	}
	return 0
}

// displayGeneralHelp prints the top-level help message.
func displayGeneralHelp() {
	fmt.Println("tenis-grupos - WhatsApp groups from a tennis roster CSV")
	fmt.Println("Usage: tenis-grupos [command] [arguments...] [--flags...]")
	fmt.Println("       tenis-grupos [file.csv]   (interactive mode)")

	fmt.Println("\nAvailable Commands:")
	for _, cmd := range commands.GetAllCommands() {
		fmt.Printf("  %-15s %s\n", cmd.Name(), cmd.Description())
	}
	fmt.Println("\nRun 'tenis-grupos [command] --help' for more information on a specific command.")
	fmt.Println("\nGlobal Flags: --help, -h, --version, --debug")
}

// displayCommandHelp displays detailed help for a specific command.
func displayCommandHelp(commandName string) {
	cmd, found := commands.GetCommand(commandName)
	if !found {
		fmt.Printf("Error: Unknown command '%s'\n", commandName)
		displayGeneralHelp()
		return
	}

	fmt.Printf("Usage: tenis-grupos %s %s\n\n", cmd.Name(), cmd.Usage())
	fmt.Printf("  %s\n", cmd.Description())

	if args := cmd.ExpectedArgs(); len(args) > 0 {
		fmt.Println("\nArguments:")
		for _, arg := range args {
			required := ""
			if arg.Required {
				required = " (required)"
			}
			fmt.Printf("  %-15s %s%s\n", arg.Name, arg.Description, required)
		}
	}

	if flags := cmd.ExpectedFlags(); len(flags) > 0 {
		fmt.Println("\nFlags:")
		for _, flag := range flags {
			flagUsage := "--" + flag.Name
			if flag.ShortName != "" {
				flagUsage += ", -" + flag.ShortName
			}
			if flag.HasValue {
				flagUsage += " <value>"
			}
			fmt.Printf("  %-15s %s\n", flagUsage, flag.Description)
		}
	}
	fmt.Println("\nGlobal Flags: --help, -h, --version, --debug")
}
