package screens

import (
	"time"

	"github.com/Guerrilla-Interactive/tenis-grupos/app"
	"github.com/Guerrilla-Interactive/tenis-grupos/app/roster"
	"github.com/Guerrilla-Interactive/tenis-grupos/app/share"
	tea "github.com/charmbracelet/bubbletea"
)

// RosterLoadedMsg carries the outcome of one upload attempt.
type RosterLoadedMsg struct {
	Attempt uint64
	Source  string
	Groups  []roster.Group
	Err     error
}

// ActionDoneMsg reports a finished copy or link action for a group.
type ActionDoneMsg struct {
	Label  string
	Action share.Action
	Text   string
	Err    error
}

// FeedbackExpiredMsg ends the "copied" indicator identified by Token.
type FeedbackExpiredMsg struct {
	Token uint64
}

// LoadRosterCmd parses the file off the UI loop and reports back tagged with
// the attempt id.
func LoadRosterCmd(attempt uint64, path string) tea.Cmd {
	return func() tea.Msg {
		r, err := roster.LoadFile(path)
		return RosterLoadedMsg{Attempt: attempt, Source: path, Groups: r.Groups, Err: err}
	}
}

// PerformActionCmd runs the copy or link action for g.
func PerformActionCmd(a share.Action, g roster.Group, cb share.Clipboard, op share.Opener) tea.Cmd {
	return func() tea.Msg {
		text, err := share.Perform(a, g, cb, op)
		return ActionDoneMsg{Label: g.Label, Action: a, Text: text, Err: err}
	}
}

// feedbackTimeout schedules the expiry for the indicator with token.
func feedbackTimeout(token uint64, window time.Duration) tea.Cmd {
	return tea.Tick(window, func(time.Time) tea.Msg {
		return FeedbackExpiredMsg{Token: token}
	})
}

// StartUpload begins a new attempt for path and returns the commands that
// load it and animate the spinner.
func StartUpload(m app.Model, path string) (app.Model, tea.Cmd) {
	attempt := m.Session.BeginUpload(path)
	m.Logger.Debug("upload started", "attempt", attempt, "path", path)
	return m, tea.Batch(LoadRosterCmd(attempt, path), m.Spinner.Tick)
}

// ApplyRosterLoaded folds an upload result into the model. Results of
// superseded attempts are dropped.
func ApplyRosterLoaded(m app.Model, msg RosterLoadedMsg) (app.Model, tea.Cmd) {
	if !m.Session.ApplyResult(msg.Attempt, msg.Groups, msg.Err) {
		m.Logger.Debug("stale upload result dropped", "attempt", msg.Attempt, "current", m.Session.Attempt)
		return m, nil
	}
	if msg.Err != nil {
		m.Logger.Warn("upload failed", "path", msg.Source, "err", msg.Err)
		if m.Session.HasGroups() {
			m.CurrentScreen = app.ScreenGroups
		}
		return m, nil
	}

	m.Logger.Info("roster loaded", "path", msg.Source, "groups", len(msg.Groups))
	m.Config.LastFile = msg.Source
	m.GroupsPaginator.Page = 0
	m.GroupsPaginator.SetTotalPages(len(msg.Groups))
	m.GroupIndex = 0
	m.StatusMsg = ""
	m.StatusIsErr = false
	m.CurrentScreen = app.ScreenGroups
	return m, nil
}

// ApplyActionDone records the action outcome and, for a successful copy,
// starts the indicator and its expiry timer.
func ApplyActionDone(m app.Model, msg ActionDoneMsg) (app.Model, tea.Cmd) {
	label := roster.Group{Label: msg.Label}.DisplayLabel()
	if msg.Err != nil {
		m.Logger.Warn("action failed", "action", msg.Action, "group", msg.Label, "err", msg.Err)
		m.StatusIsErr = true
		switch msg.Action {
		case share.ActionCopy:
			m.StatusMsg = "No se pudo copiar al portapapeles: " + msg.Err.Error()
		default:
			m.StatusMsg = "No se pudo abrir el enlace. Cópialo manualmente:\n" + msg.Text
		}
		return m, nil
	}

	m.StatusIsErr = false
	switch msg.Action {
	case share.ActionCopy:
		window := m.Config.FeedbackDuration()
		token := m.Session.StartFeedback(msg.Label, time.Now(), window)
		m.StatusMsg = "Números del Grupo " + label + " copiados: " + msg.Text
		return m, feedbackTimeout(token, window)
	default:
		m.StatusMsg = "Enlace de WhatsApp abierto para el Grupo " + label + ":\n" + msg.Text
		return m, nil
	}
}

// ApplyFeedbackExpired hides the indicator if it has not been replaced.
func ApplyFeedbackExpired(m app.Model, msg FeedbackExpiredMsg) app.Model {
	m.Session.ExpireFeedback(msg.Token)
	return m
}
