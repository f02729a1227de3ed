package shared

import (
	"github.com/Guerrilla-Interactive/tenis-grupos/app"
)

// Banner renders the load error, if any.
func Banner(m app.Model) string {
	if m.Session.Err == "" {
		return ""
	}
	return app.ErrorStyle.Render("✗ " + m.Session.Err)
}
