package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/zephyrtronium/msgcmd/command"
	"github.com/zephyrtronium/msgcmd/option"
	"github.com/zephyrtronium/msgcmd/perm"
	"github.com/zephyrtronium/msgcmd/registry"
)

// Load loads command definitions from a TOML configuration.
func Load(ctx context.Context, r io.Reader) (*Config, *toml.MetaData, error) {
	var cfg Config
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("couldn't decode config: %w", err)
	}
	expandcfg(&cfg, os.Getenv)
	return &cfg, &md, nil
}

// Commands builds the configured commands into a registry using the
// configured prefix. Every command name and alias must be distinct across
// all commands.
func (cfg *Config) Commands() (*registry.Registry, error) {
	r := registry.New(cfg.Prefix)
	for i, c := range cfg.Command {
		cmd, err := c.build()
		if err != nil {
			return nil, fmt.Errorf("couldn't build command %d (%q): %w", i, c.Name, err)
		}
		if err := r.Add(cmd); err != nil {
			return nil, fmt.Errorf("couldn't add command %d (%q): %w", i, c.Name, err)
		}
	}
	return r, nil
}

func (c *CommandCfg) build() (*command.Command, error) {
	perms, err := perm.ParseAll(c.Permissions)
	if err != nil {
		return nil, err
	}
	opts := make([]*option.Option, 0, len(c.Option))
	for i, o := range c.Option {
		opt, err := o.build()
		if err != nil {
			return nil, fmt.Errorf("couldn't build option %d (%q): %w", i, o.Name, err)
		}
		opts = append(opts, opt)
	}
	var cmd *command.Command
	err = option.Catch(func() {
		b := command.New().SetName(c.Name)
		if c.Description != "" {
			b.SetDescription(c.Description)
		}
		if len(c.Aliases) != 0 {
			b.SetAliases(c.Aliases...)
		}
		if len(c.Roles) != 0 {
			b.SetRoles(c.Roles...)
		}
		if perms != 0 {
			b.SetPermissions(perms)
		}
		for _, o := range opts {
			b.AddOption(o.Kind(), func(*option.Option) *option.Option { return o })
		}
		cmd = b.Build()
	})
	return cmd, err
}

func (o *OptionCfg) build() (*option.Option, error) {
	k, err := option.ParseKind(o.Kind)
	if err != nil {
		return nil, err
	}
	var opt *option.Option
	err = option.Catch(func() {
		opt = option.New(k).SetName(o.Name)
		if o.Description != "" {
			opt.SetDescription(o.Description)
		}
		for _, c := range o.Choices {
			switch v := c.Value.(type) {
			case string:
				opt.AddChoice(c.Label, v)
			case int64:
				opt.AddNumberChoice(c.Label, v)
			default:
				panic(&option.ValidationError{Msg: fmt.Sprintf("choice %q must have a string or integer value", c.Label)})
			}
		}
		if o.Min != nil {
			opt.SetMin(*o.Min)
		}
		if o.Max != nil {
			opt.SetMax(*o.Max)
		}
	})
	return opt, err
}

var errNoCommands = errors.New("no commands configured")

// Config is the marshaled structure of a command definition file.
type Config struct {
	// Prefix is the text that begins every command invocation.
	Prefix string `toml:"prefix"`
	// Command is the list of command definitions.
	Command []CommandCfg `toml:"command"`
}

// CommandCfg is the definition of a single command.
type CommandCfg struct {
	// Name is the primary name of the command.
	Name string `toml:"name"`
	// Description describes the command. If empty, a placeholder is used.
	Description string `toml:"description"`
	// Aliases is a list of alternate names that also invoke the command.
	Aliases []string `toml:"aliases"`
	// Roles is the list of role IDs a caller must hold.
	Roles []string `toml:"roles"`
	// Permissions is the list of permission names a caller must hold,
	// e.g. "AddReactions" or "Manage Messages".
	Permissions []string `toml:"permissions"`
	// Option is the list of positional options in order.
	Option []OptionCfg `toml:"option"`
}

// OptionCfg is the definition of a command option.
type OptionCfg struct {
	// Kind is the option kind: text, number, boolean, user, channel, role,
	// or mention.
	Kind string `toml:"kind"`
	// Name is the name of the option.
	Name string `toml:"name"`
	// Description describes the option. If empty, a placeholder is used.
	Description string `toml:"description"`
	// Choices is the list of admissible values.
	Choices []ChoiceCfg `toml:"choices"`
	// Min and Max are bounds on the value of a number option or the length
	// of a text option.
	Min *int64 `toml:"min"`
	Max *int64 `toml:"max"`
}

// ChoiceCfg is an admissible option value.
type ChoiceCfg struct {
	Label string `toml:"label"`
	// Value is a string, or an integer for number options.
	Value any `toml:"value"`
}

func expandcfg(cfg *Config, expand func(s string) string) {
	cfg.Prefix = os.Expand(cfg.Prefix, expand)
	for i := range cfg.Command {
		c := &cfg.Command[i]
		c.Name = os.Expand(c.Name, expand)
		for j, s := range c.Aliases {
			c.Aliases[j] = os.Expand(s, expand)
		}
		for j, s := range c.Roles {
			c.Roles[j] = os.Expand(s, expand)
		}
	}
}
