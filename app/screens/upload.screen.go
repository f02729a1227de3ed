package screens

import (
	"strings"

	"github.com/Guerrilla-Interactive/tenis-grupos/app"
	sharedScreens "github.com/Guerrilla-Interactive/tenis-grupos/app/screens/shared"
	"github.com/Guerrilla-Interactive/tenis-grupos/app/session"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// OpenUploadScreen switches to the upload screen and refreshes the picker.
func OpenUploadScreen(m app.Model) (app.Model, tea.Cmd) {
	m.CurrentScreen = app.ScreenUpload
	m.PathInputFocused = false
	m.PathInput.Blur()
	return m, m.FilePicker.Init()
}

// UpdateScreenUpload handles the file picker and the manual path prompt.
func UpdateScreenUpload(m app.Model, msg tea.Msg) (app.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.PathInputFocused = !m.PathInputFocused
			if m.PathInputFocused {
				return m, tea.Batch(m.PathInput.Focus(), textinput.Blink)
			}
			m.PathInput.Blur()
			return m, nil
		}

		if m.PathInputFocused {
			switch keyMsg.Type {
			case tea.KeyEnter:
				path := strings.TrimSpace(m.PathInput.Value())
				if path == "" {
					return m, nil
				}
				return StartUpload(m, path)
			case tea.KeyEsc:
				if m.Session.HasGroups() {
					m.CurrentScreen = app.ScreenGroups
				}
				return m, nil
			}
			var cmd tea.Cmd
			m.PathInput, cmd = m.PathInput.Update(keyMsg)
			return m, cmd
		}

		if keyMsg.String() == "q" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.FilePicker, cmd = m.FilePicker.Update(msg)
	if ok, path := m.FilePicker.DidSelectFile(msg); ok {
		m.PathInput.SetValue(path)
		var loadCmd tea.Cmd
		m, loadCmd = StartUpload(m, path)
		return m, tea.Batch(cmd, loadCmd)
	}
	if ok, path := m.FilePicker.DidSelectDisabledFile(msg); ok {
		m.StatusMsg = "Solo se admiten archivos .csv: " + path
		m.StatusIsErr = true
	}
	return m, cmd
}

// ViewScreenUpload renders the picker, the path prompt and any load error.
func ViewScreenUpload(m app.Model) string {
	header := app.TitleStyle.Render("Generador de Grupos de WhatsApp") + "\n"
	intro := sharedScreens.Welcome(sharedScreens.ComputePanelWidth(m.TerminalWidth))

	var body string
	if m.PathInputFocused {
		body = lipgloss.JoinVertical(lipgloss.Left,
			app.SubtitleStyle.Render("Ruta del archivo:"),
			m.PathInput.View(),
		)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left,
			app.SubtitleStyle.Render("Selecciona el archivo CSV:"),
			app.PathStyle.Render(m.FilePicker.CurrentDirectory),
			m.FilePicker.View(),
		)
	}
	panel := lipgloss.NewStyle().
		Width(sharedScreens.ComputePanelWidth(m.TerminalWidth)).
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Render(body)

	parts := []string{header, intro, panel}
	if m.Session.Status == session.StateLoading {
		parts = append(parts, m.Spinner.View()+" Procesando "+m.Session.Pending+"...")
	}
	if banner := sharedScreens.Banner(m); banner != "" {
		parts = append(parts, banner)
	}
	if m.StatusMsg != "" && m.StatusIsErr {
		parts = append(parts, app.ErrorStyle.Render(m.StatusMsg))
	}

	tips := []string{"tab escribir ruta", "enter seleccionar"}
	if m.PathInputFocused && m.Session.HasGroups() {
		tips = append(tips, "esc volver a los grupos")
	}
	tips = append(tips, "ctrl+c salir")
	parts = append(parts, "", sharedScreens.Footer(tips...))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
