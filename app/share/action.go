package share

import (
	"strings"

	"github.com/Guerrilla-Interactive/tenis-grupos/app/roster"
	"github.com/cockroachdb/errors"
)

// Action is the terminal action offered for each group.
type Action int

const (
	// ActionCopy copies the group's phone numbers to the clipboard.
	ActionCopy Action = iota
	// ActionLink builds a WhatsApp link with the invite message and opens it.
	ActionLink
)

func (a Action) String() string {
	switch a {
	case ActionCopy:
		return "copy"
	case ActionLink:
		return "link"
	}
	return "unknown"
}

// ParseAction accepts "copy" or "link" (case-insensitive).
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "copy", "clipboard":
		return ActionCopy, nil
	case "link", "whatsapp":
		return ActionLink, nil
	}
	return ActionCopy, errors.Newf("unknown action %q (want copy or link)", s)
}

// Perform runs the action for g and returns the derived text: the phone list
// for ActionCopy, the link for ActionLink. Failures are returned as-is; the
// caller decides whether to ask the user to try again.
func Perform(a Action, g roster.Group, cb Clipboard, op Opener) (string, error) {
	switch a {
	case ActionCopy:
		text := PhoneList(g)
		if err := cb.WriteAll(text); err != nil {
			return text, errors.Wrapf(err, "copy phones of group %q", g.Label)
		}
		return text, nil
	case ActionLink:
		link := WhatsAppLink(g)
		if err := op.Open(link); err != nil {
			return link, errors.Wrapf(err, "open link for group %q", g.Label)
		}
		return link, nil
	}
	return "", errors.Newf("unsupported action %d", int(a))
}
