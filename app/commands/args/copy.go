package args

import (
	"fmt"

	"github.com/Guerrilla-Interactive/tenis-grupos/app/cli"
	"github.com/Guerrilla-Interactive/tenis-grupos/app/share"
)

var printFlag = FlagDef{Name: "print", ShortName: "p", Description: "Print the phone list instead of copying it.", HasValue: false}

// CopyCommand copies one group's phone numbers to the clipboard.
type CopyCommand struct{}

func init() {
	RegisterCommand(&CopyCommand{})
}

func (c *CopyCommand) Name() string { return "copy" }

func (c *CopyCommand) Description() string {
	return "Copies the phone numbers of a group to the clipboard, comma separated."
}

func (c *CopyCommand) Usage() string { return "<file.csv> <grupo> [--print]" }

func (c *CopyCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "file", Description: "Roster CSV with nombre, telefono and grupo columns.", Required: true},
		{Name: "grupo", Description: "Group label as written in the grupo column.", Required: true},
	}
}

func (c *CopyCommand) ExpectedFlags() []FlagDef { return []FlagDef{printFlag} }

func (c *CopyCommand) Execute(rt *Runtime, args cli.CommandArgs) error {
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

	if boolFlag(args, printFlag) {
		fmt.Fprintln(rt.Out, share.PhoneList(g))
		return nil
	}
	text, err := share.Perform(share.ActionCopy, g, rt.Clipboard, rt.Opener)
	if err != nil {
		return err
	}
	fmt.Fprintf(rt.Out, "Copiados %d números del Grupo %s: %s\n", g.Len(), g.DisplayLabel(), text)
	return nil
}
