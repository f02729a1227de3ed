package shared

import (
	"strings"

	"github.com/Guerrilla-Interactive/tenis-grupos/app"
	"github.com/charmbracelet/lipgloss"
)

const welcome = "Bienvenido a la herramienta oficial de creación de grupos de WhatsApp " +
	"para la Liga Amunt i Avall del Club Barcino. Esta aplicación está diseñada " +
	"exclusivamente para el uso del personal de Tenis del Club."

var csvSteps = []string{
	"1. Prepare un archivo Excel y guárdelo como CSV con las columnas:",
	"     nombre    nombre completo del jugador",
	"     telefono  preferiblemente en formato internacional, ej: 34612345678",
	"     grupo     número o nombre del grupo al que pertenece",
	"2. Puede incluir tantos jugadores como desee en cada grupo, no hay límite de participantes.",
	"3. Al subir el archivo, se mostrarán los grupos y podrá copiar los números fácilmente para crear los grupos en WhatsApp.",
}

var whatsappSteps = []string{
	"1. Copia los números del grupo que quieras crear",
	"2. Abre WhatsApp en tu teléfono",
	"3. Pulsa en los tres puntos → Nuevo grupo",
	"4. Pega los números copiados en el campo de búsqueda",
	"5. Selecciona los participantes y crea el grupo",
}

// Welcome renders the introduction shown above the file picker: who the
// tool is for and how a roster file must look. A width of 0 disables
// wrapping.
func Welcome(width int) string {
	style := app.ChoiceStyle
	if width > 0 {
		style = style.Width(width)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		style.Render(welcome),
		"",
		app.SubtitleStyle.Render("Cómo funciona:"),
		style.Render(strings.Join(csvSteps, "\n")),
	)
}

// WhatsAppInstructions renders the steps to create a group from copied numbers.
func WhatsAppInstructions(width int) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		app.SubtitleStyle.Render("Instrucciones para crear grupos:"),
		strings.Join(whatsappSteps, "\n"),
	)
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render(body)
}
