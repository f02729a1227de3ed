package screens

import (
	"fmt"
	"strings"

	"github.com/Guerrilla-Interactive/tenis-grupos/app"
	"github.com/Guerrilla-Interactive/tenis-grupos/app/roster"
	sharedScreens "github.com/Guerrilla-Interactive/tenis-grupos/app/screens/shared"
	"github.com/Guerrilla-Interactive/tenis-grupos/app/session"
	"github.com/Guerrilla-Interactive/tenis-grupos/app/share"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// UpdateScreenGroups handles navigation and the per-group actions.
func UpdateScreenGroups(m app.Model, msg tea.KeyMsg) (app.Model, tea.Cmd) {
	total := len(m.Session.Groups)
	p := &m.GroupsPaginator
	p.SetTotalPages(total)
	start, end := p.GetSliceBounds(total)
	onPage := end - start
	if m.GroupIndex >= onPage {
		m.GroupIndex = onPage - 1
	}
	if m.GroupIndex < 0 {
		m.GroupIndex = 0
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "left", "h":
		if !p.OnFirstPage() {
			p.PrevPage()
			m.GroupIndex = 0
		}

	case "right", "l":
		if !p.OnLastPage() {
			p.NextPage()
			m.GroupIndex = 0
		}

	case "up", "k":
		if m.GroupIndex > 0 {
			m.GroupIndex--
		} else if !p.OnFirstPage() {
			p.PrevPage()
			s, e := p.GetSliceBounds(total)
			m.GroupIndex = e - s - 1
		}

	case "down", "j":
		if m.GroupIndex < onPage-1 {
			m.GroupIndex++
		} else if !p.OnLastPage() {
			p.NextPage()
			m.GroupIndex = 0
		}

	case "enter":
		return runAction(m, m.Action)

	case "c":
		return runAction(m, share.ActionCopy)

	case "w":
		return runAction(m, share.ActionLink)

	case "a":
		if m.Action == share.ActionCopy {
			m.Action = share.ActionLink
		} else {
			m.Action = share.ActionCopy
		}
		m.Config.DefaultAction = m.Action.String()
		m.ActionToggled = true

	case "?":
		m.ShowHelp = !m.ShowHelp

	case "u", "esc":
		return OpenUploadScreen(m)
	}
	return m, nil
}

func runAction(m app.Model, a share.Action) (app.Model, tea.Cmd) {
	g, ok := m.SelectedGroup()
	if !ok {
		return m, nil
	}
	m.Logger.Debug("action requested", "action", a, "group", g.Label, "players", g.Len())
	return m, PerformActionCmd(a, g, m.Clipboard, m.Opener)
}

// RenderGroup renders one group panel: its header, the copy indicator and
// a "name - phone" line per player.
func RenderGroup(g roster.Group, selected, copied bool, width int) string {
	title := app.SubtitleStyle.Render("Grupo " + g.DisplayLabel())
	if copied {
		title += "  " + app.SuccessStyle.Render("¡Copiado!")
	}
	lines := make([]string, 0, len(g.Rows)+1)
	lines = append(lines, title)
	for _, row := range g.Rows {
		lines = append(lines, fmt.Sprintf("%s - %s", row.Name(), row.Phone()))
	}

	border := lipgloss.Color("240")
	if selected {
		border = lipgloss.Color("#FFA500")
	}
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Render(strings.Join(lines, "\n"))
}

// ViewScreenGroups renders the groups on the current page.
func ViewScreenGroups(m app.Model) string {
	header := app.TitleStyle.Render("Grupos de WhatsApp") + "\n"
	parts := []string{header}
	if src := sharedScreens.SourceHeader(m.Session.Source); src != "" {
		count := fmt.Sprintf("  %d grupos", len(m.Session.Groups))
		parts = append(parts, src+app.PathStyle.Render(count))
	}
	if m.Session.Status == session.StateLoading {
		parts = append(parts, m.Spinner.View()+" Procesando "+m.Session.Pending+"...")
	}
	if banner := sharedScreens.Banner(m); banner != "" {
		parts = append(parts, banner)
	}

	width := sharedScreens.ComputePanelWidth(m.TerminalWidth)
	if m.ShowHelp {
		parts = append(parts, sharedScreens.WhatsAppInstructions(width))
	}
	for i, g := range m.PageGroups() {
		parts = append(parts, RenderGroup(g, i == m.GroupIndex, m.Session.FeedbackFor(g.Label), width))
	}
	if m.GroupsPaginator.TotalPages > 1 {
		parts = append(parts, lipgloss.NewStyle().MarginTop(1).Render(m.GroupsPaginator.View()))
	}

	if m.StatusMsg != "" {
		style := app.ChoiceStyle
		if m.StatusIsErr {
			style = app.ErrorStyle
		}
		parts = append(parts, style.Width(width).Render(m.StatusMsg))
	}

	enter := "enter copiar números"
	if m.Action == share.ActionLink {
		enter = "enter enlace WhatsApp"
	}
	footer := sharedScreens.Footer("↑↓ ←→ navegar", enter, "c copiar", "w WhatsApp", "a cambiar acción", "u subir otro", "? ayuda", "q salir")
	parts = append(parts, "", footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
