package share

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Guerrilla-Interactive/tenis-grupos/app/roster"
)

// WhatsAppBase is the deep link every share link is built on.
const WhatsAppBase = "https://wa.me/send"

// PhoneList joins the group's phone numbers in row order.
func PhoneList(g roster.Group) string {
	phones := make([]string, len(g.Rows))
	for i, row := range g.Rows {
		phones[i] = row.Phone()
	}
	return strings.Join(phones, ", ")
}

// InviteMessage renders the invitation text sent to a group.
func InviteMessage(g roster.Group) string {
	lines := make([]string, len(g.Rows))
	for i, row := range g.Rows {
		lines[i] = fmt.Sprintf("- %s: %s", row.Name(), row.Phone())
	}
	return fmt.Sprintf(
		"Hola! Los invito al grupo de tenis \"Grupo Tenis %s\". Por favor, únanse usando este enlace.\n\nParticipantes:\n%s",
		g.Label, strings.Join(lines, "\n"),
	)
}

// WhatsAppLink builds the share link carrying the group's invite message.
// Spaces are encoded as %20 and newlines as %0A.
func WhatsAppLink(g roster.Group) string {
	query := url.Values{"text": {InviteMessage(g)}}.Encode()
	return WhatsAppBase + "?" + strings.ReplaceAll(query, "+", "%20")
}
