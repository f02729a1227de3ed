package args

import (
	"fmt"

	"github.com/Guerrilla-Interactive/tenis-grupos/app/cli"
	"github.com/Guerrilla-Interactive/tenis-grupos/app/roster"
	"github.com/cockroachdb/errors"
)

// GroupsCommand prints every group of a roster.
type GroupsCommand struct{}

func init() {
	RegisterCommand(&GroupsCommand{})
}

func (c *GroupsCommand) Name() string { return "groups" }

func (c *GroupsCommand) Description() string {
	return "Lists the groups of a roster CSV with each player's name and phone."
}

func (c *GroupsCommand) Usage() string { return "<file.csv>" }

func (c *GroupsCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{{Name: "file", Description: "Roster CSV with nombre, telefono and grupo columns.", Required: true}}
}

func (c *GroupsCommand) ExpectedFlags() []FlagDef { return []FlagDef{} }

func (c *GroupsCommand) Execute(rt *Runtime, args cli.CommandArgs) error {
	if err := requireArgs(c, args); err != nil {
		return err
	}
	r, err := loadRoster(rt, args.Variables[0])
	if err != nil {
		return err
	}
	for i, g := range r.Groups {
		if i > 0 {
			fmt.Fprintln(rt.Out)
		}
		fmt.Fprintf(rt.Out, "Grupo %s\n", g.DisplayLabel())
		for _, row := range g.Rows {
			fmt.Fprintf(rt.Out, "  %s - %s\n", row.Name(), row.Phone())
		}
	}
	return nil
}

func loadRoster(rt *Runtime, path string) (roster.Roster, error) {
	r, err := roster.LoadFile(path)
	if err != nil {
		rt.Logger.Debug("roster load failed", "path", path, "err", err)
		return roster.Roster{}, err
	}
	rt.Logger.Debug("roster loaded", "path", path, "rows", len(r.Rows), "groups", len(r.Groups))
	return r, nil
}

// findGroup looks up label, listing the known labels when it is absent.
func findGroup(r roster.Roster, label string) (roster.Group, error) {
	g, ok := roster.Find(r.Groups, label)
	if !ok {
		return roster.Group{}, errors.Newf("group %q not found (available: %q)", label, roster.Labels(r.Groups))
	}
	return g, nil
}
