package shared

import (
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// ComputePanelWidth returns the width for group panels given the terminal
// width, clamped to [minWidth, maxWidth].
func ComputePanelWidth(termWidth int) int {
	const (
		defaultWidth = 56
		minWidth     = 30
		maxWidth     = 80
	)
	if termWidth <= 0 {
		return defaultWidth
	}
	w := termWidth - 6
	if w < minWidth {
		w = minWidth
	}
	if w > maxWidth {
		w = maxWidth
	}
	return w
}

// SourceHeader renders a gray header with the roster file name.
func SourceHeader(path string) string {
	if path == "" {
		return ""
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#888")).Render("📄 " + filepath.Base(path))
}
