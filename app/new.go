package app

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Guerrilla-Interactive/tenis-grupos/app/session"
	"github.com/Guerrilla-Interactive/tenis-grupos/app/share"
	config "github.com/Guerrilla-Interactive/tenis-grupos/internal"
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// NewModel builds the initial model from the loaded settings.
func NewModel(cfg config.Config, version string, logger *slog.Logger) Model {
	action, err := share.ParseAction(cfg.DefaultAction)
	if err != nil {
		logger.Warn("ignoring default_action", "value", cfg.DefaultAction, "err", err)
	}

	fp := filepicker.New()
	fp.AllowedTypes = []string{".csv"}
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.ShowHidden = false
	fp.AutoHeight = false
	fp.Height = 12
	if wd, err := os.Getwd(); err == nil {
		fp.CurrentDirectory = wd
	}
	if cfg.LastFile != "" {
		if dir := filepath.Dir(cfg.LastFile); dirExists(dir) {
			fp.CurrentDirectory = dir
		}
	}

	ti := textinput.New()
	ti.Placeholder = "ruta/al/archivo.csv"
	ti.CharLimit = 512
	ti.Width = 50
	ti.SetValue(cfg.LastFile)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = HighlightStyle

	pg := paginator.New()
	pg.Type = paginator.Dots
	pg.PerPage = cfg.PageSize
	if pg.PerPage < 1 {
		pg.PerPage = config.Default().PageSize
	}
	pg.ActiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff3600")).Render("•")
	pg.InactiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("•")

	return Model{
		CurrentScreen:   ScreenUpload,
		Version:         version,
		Session:         session.New(),
		Config:          cfg,
		Action:          action,
		FilePicker:      fp,
		PathInput:       ti,
		Spinner:         sp,
		GroupsPaginator: pg,
		TerminalWidth:   80,
		TerminalHeight:  24,
		Clipboard:       share.SystemClipboard{},
		Opener:          share.BrowserOpener{},
		Logger:          logger,
	}
}

func dirExists(dir string) bool {
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}
