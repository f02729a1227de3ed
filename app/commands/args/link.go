package args

import (
	"fmt"

	"github.com/Guerrilla-Interactive/tenis-grupos/app/cli"
	"github.com/Guerrilla-Interactive/tenis-grupos/app/share"
)

var (
	openFlag    = FlagDef{Name: "open", ShortName: "o", Description: "Open the link in the browser.", HasValue: false}
	messageFlag = FlagDef{Name: "message", ShortName: "m", Description: "Print the invite message instead of the link.", HasValue: false}
)

// LinkCommand builds the WhatsApp share link for a group.
type LinkCommand struct{}

func init() {
	RegisterCommand(&LinkCommand{})
}

func (c *LinkCommand) Name() string { return "link" }

func (c *LinkCommand) Description() string {
	return "Prints a WhatsApp link pre-filled with the group's invite message."
}

func (c *LinkCommand) Usage() string { return "<file.csv> <grupo> [--open] [--message]" }

func (c *LinkCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "file", Description: "Roster CSV with nombre, telefono and grupo columns.", Required: true},
		{Name: "grupo", Description: "Group label as written in the grupo column.", Required: true},
	}
}

func (c *LinkCommand) ExpectedFlags() []FlagDef { return []FlagDef{openFlag, messageFlag} }

func (c *LinkCommand) Execute(rt *Runtime, args cli.CommandArgs) error {
	if err := requireArgs(c, args); err != nil {
		return err
	}
	r, err := loadRoster(rt, args.Variables[0])
	if err != nil {
		return err
	}
	g, err := findGroup(r, args.Variables[1])
	if err != nil {
		return err
	}

	if boolFlag(args, messageFlag) {
		fmt.Fprintln(rt.Out, share.InviteMessage(g))
		return nil
	}
	if !boolFlag(args, openFlag) {
		fmt.Fprintln(rt.Out, share.WhatsAppLink(g))
		return nil
	}
	link, err := share.Perform(share.ActionLink, g, rt.Clipboard, rt.Opener)
	fmt.Fprintln(rt.Out, link)
	return err
}
