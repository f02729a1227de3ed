package args

import (
	"fmt"

	"github.com/Guerrilla-Interactive/tenis-grupos/app/cli"
	config "github.com/Guerrilla-Interactive/tenis-grupos/internal"
)

// ConfigGetCommand prints one setting.
type ConfigGetCommand struct{}

// ConfigSetCommand validates, stores and saves one setting.
type ConfigSetCommand struct{}

// ConfigListCommand prints every setting.
type ConfigListCommand struct{}

func init() {
	RegisterCommand(&ConfigGetCommand{})
	RegisterCommand(&ConfigSetCommand{})
	RegisterCommand(&ConfigListCommand{})
}

func (c *ConfigGetCommand) Name() string        { return "config get" }
func (c *ConfigGetCommand) Description() string { return "Gets the value of a configuration key." }
func (c *ConfigGetCommand) Usage() string       { return "<key>" }
func (c *ConfigGetCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{{Name: "key", Description: "One of the keys shown by config list.", Required: true}}
}
func (c *ConfigGetCommand) ExpectedFlags() []FlagDef { return []FlagDef{} }

func (c *ConfigGetCommand) Execute(rt *Runtime, args cli.CommandArgs) error {
	if err := requireArgs(c, args); err != nil {
		return err
	}
	value, err := rt.Config.Get(args.Variables[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(rt.Out, value)
	return nil
}

func (c *ConfigSetCommand) Name() string        { return "config set" }
func (c *ConfigSetCommand) Description() string { return "Sets a configuration key and saves it." }
func (c *ConfigSetCommand) Usage() string       { return "<key> <value>" }
func (c *ConfigSetCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "key", Description: "One of the keys shown by config list.", Required: true},
		{Name: "value", Description: "New value for the key.", Required: true},
	}
}
func (c *ConfigSetCommand) ExpectedFlags() []FlagDef { return []FlagDef{} }

func (c *ConfigSetCommand) Execute(rt *Runtime, args cli.CommandArgs) error {
	if err := requireArgs(c, args); err != nil {
		return err
	}
	key, value := args.Variables[0], args.Variables[1]
	if err := rt.Config.Set(key, value); err != nil {
		return err
	}
	if err := rt.SaveConfig(*rt.Config); err != nil {
		return err
	}
	rt.Logger.Info("config updated", "key", key, "value", value)
	fmt.Fprintf(rt.Out, "%s = %s\n", key, value)
	return nil
}

func (c *ConfigListCommand) Name() string { return "config list" }
func (c *ConfigListCommand) Description() string {
	return "Lists every configuration key and its value."
}
func (c *ConfigListCommand) Usage() string            { return "" }
func (c *ConfigListCommand) ExpectedArgs() []ArgDef   { return []ArgDef{} }
func (c *ConfigListCommand) ExpectedFlags() []FlagDef { return []FlagDef{} }

func (c *ConfigListCommand) Execute(rt *Runtime, args cli.CommandArgs) error {
	for _, key := range config.Keys() {
		value, _ := rt.Config.Get(key)
		fmt.Fprintf(rt.Out, "%-16s %s\n", key, value)
	}
	return nil
}
