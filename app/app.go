package app

import (
	"log/slog"

	"github.com/Guerrilla-Interactive/tenis-grupos/app/roster"
	"github.com/Guerrilla-Interactive/tenis-grupos/app/session"
	"github.com/Guerrilla-Interactive/tenis-grupos/app/share"
	config "github.com/Guerrilla-Interactive/tenis-grupos/internal"
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// Screen indicates which screen is currently shown.
type Screen int

const (
	ScreenUpload Screen = iota
	ScreenGroups
)

// Model is the primary application state shared by all screens.
type Model struct {
	CurrentScreen Screen
	Version       string

	Session *session.Session
	Config  config.Config
	// Action is what enter does on the groups screen. ActionToggled is set
	// once the user switches it with "a".
	Action        share.Action
	ActionToggled bool

	FilePicker       filepicker.Model
	PathInput        textinput.Model
	PathInputFocused bool
	Spinner          spinner.Model

	GroupsPaginator paginator.Model
	GroupIndex      int // index within the current page
	ShowHelp        bool

	// StatusMsg is the outcome of the last copy or link action.
	StatusMsg   string
	StatusIsErr bool

	TerminalWidth  int
	TerminalHeight int

	Clipboard share.Clipboard
	Opener    share.Opener
	Logger    *slog.Logger
}

// SelectedGroup returns the group under the cursor.
func (m Model) SelectedGroup() (roster.Group, bool) {
	groups := m.Session.Groups
	start, end := m.GroupsPaginator.GetSliceBounds(len(groups))
	idx := start + m.GroupIndex
	if idx < start || idx >= end {
		return roster.Group{}, false
	}
	return groups[idx], true
}

// PreferredAction is the action to remember for the next session, or ""
// when the user never switched it and the loaded setting should stay as is.
func (m Model) PreferredAction() string {
	if !m.ActionToggled {
		return ""
	}
	return m.Action.String()
}

// PageGroups returns the groups on the current page.
func (m Model) PageGroups() []roster.Group {
	groups := m.Session.Groups
	start, end := m.GroupsPaginator.GetSliceBounds(len(groups))
	if start >= end {
		return nil
	}
	return groups[start:end]
}

var (
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).MarginTop(1)
	SubtitleStyle  = lipgloss.NewStyle().Bold(true)
	HighlightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA500"))
	ChoiceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	HelpStyle      = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#888888"))
	PathStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	ErrorStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F5F"))
	SuccessStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5FD75F"))
)
