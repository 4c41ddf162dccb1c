package main_test

import (
	"context"
	_ "embed"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	main "github.com/zephyrtronium/msgcmd"
	"github.com/zephyrtronium/msgcmd/option"
	"github.com/zephyrtronium/msgcmd/perm"
)

//go:embed example.toml
var exampleToml string

const djRole = "123456789012345678"

func eqcase[T comparable](t *testing.T, name string, val T, eq T) {
	t.Helper()
	if val != eq {
		t.Errorf("wrong %s: want %#v, got %#v", name, eq, val)
	}
}

func TestExampleConfig(t *testing.T) {
	t.Setenv("DJ_ROLE", djRole)
	cfg, _, err := main.Load(context.Background(), strings.NewReader(exampleToml))
	if err != nil {
		t.Fatalf("failed to load example.toml: %v", err)
	}

	eqcase(t, "Prefix", cfg.Prefix, ">>")
	eqcase(t, "len(Command)", len(cfg.Command), 4)
	eqcase(t, "Command[0].Name", cfg.Command[0].Name, "test-name")
	eqcase(t, "Command[0].Aliases[1]", cfg.Command[0].Aliases[1], "TEST")
	eqcase(t, "len(Command[0].Option)", len(cfg.Command[0].Option), 5)
	eqcase(t, "Command[0].Option[3].Kind", cfg.Command[0].Option[3].Kind, "user")
	eqcase(t, "Command[1].Permissions[1]", cfg.Command[1].Permissions[1], "Add Reactions")
	eqcase(t, "*Command[1].Option[0].Min", *cfg.Command[1].Option[0].Min, 0)
	eqcase(t, "*Command[1].Option[0].Max", *cfg.Command[1].Option[0].Max, 23)
	eqcase(t, "Command[1].Option[1].Min", cfg.Command[1].Option[1].Min, nil)
	eqcase(t, "len(Command[1].Option)", len(cfg.Command[1].Option), 3)
	eqcase(t, "Command[1].Option[2].Choices[1].Value", cfg.Command[1].Option[2].Choices[1].Value, any("daily"))
	eqcase(t, "Command[2].Roles[0]", cfg.Command[2].Roles[0], djRole)
	eqcase(t, "Command[2].Option[0].Choices[2].Value", cfg.Command[2].Option[0].Choices[2].Value, any(int64(100)))
	eqcase(t, "Command[3].Option[0].Kind", cfg.Command[3].Option[0].Kind, "mention")

	reg, err := cfg.Commands()
	if err != nil {
		t.Fatalf("failed to build commands: %v", err)
	}
	eqcase(t, "Prefix()", reg.Prefix(), ">>")
	cmds := slices.Collect(reg.All())
	if len(cmds) != 4 {
		t.Fatalf("wrong number of commands: want 4, got %d", len(cmds))
	}
	eqcase(t, "cmds[0].Pattern", cmds[0].Pattern(cfg.Prefix), `(?m)^>>(test-name|t|TEST)\s+"(.+)"\s+(\d+)\s+(true|false)\s+<@!?(\d{17,19})>\s+<#(\d{17,19})>$`)
	eqcase(t, "cmds[1].Permissions", cmds[1].Permissions(), perm.SendMessages|perm.AddReactions)
	eqcase(t, "cmds[1].Usage", cmds[1].Usage("!"), "!remind <hour: number> <note: text> <repeat: once|daily|weekly>")
	eqcase(t, "cmds[2].Pattern", cmds[2].Pattern(""), `(?m)^(volume|vol)\s+(25|50|100)$`)
	if diff := cmp.Diff([]string{djRole}, cmds[2].Roles()); diff != "" {
		t.Errorf("wrong roles for volume:\n%s", diff)
	}
	eqcase(t, "cmds[3].Options()[0].Kind", cmds[3].Options()[0].Kind(), option.GenericMention)
	vol, _ := reg.Lookup("vol")
	eqcase(t, "Lookup(vol)", vol, cmds[2])
}

func TestConfigErrors(t *testing.T) {
	cases := []struct {
		name string
		toml string
		want string
	}{
		{
			name: "no-name",
			toml: "[[command]]\ndescription = \"x\"",
			want: `couldn't build command 0 (""): command name must be at least one character long`,
		},
		{
			name: "bad-kind",
			toml: "[[command]]\nname = \"a\"\n[[command.option]]\nkind = \"float\"\nname = \"f\"",
			want: `couldn't build command 0 ("a"): couldn't build option 0 ("f"): unknown option kind "float"`,
		},
		{
			name: "choice-with-bounds",
			toml: "[[command]]\nname = \"a\"\n[[command.option]]\nkind = \"number\"\nname = \"n\"\nchoices = [{label = \"x\", value = 1}]\nmax = 5",
			want: `couldn't build command 0 ("a"): couldn't build option 0 ("n"): you cannot set a maximum if choices are provided`,
		},
		{
			name: "bad-choice-value",
			toml: "[[command]]\nname = \"a\"\n[[command.option]]\nkind = \"text\"\nname = \"s\"\nchoices = [{label = \"x\", value = 1.5}]",
			want: `couldn't build command 0 ("a"): couldn't build option 0 ("s"): choice "x" must have a string or integer value`,
		},
		{
			name: "unknown-permission",
			toml: "[[command]]\nname = \"a\"\npermissions = [\"Fly\"]",
			want: `couldn't build command 0 ("a"): unknown permission "Fly"`,
		},
		{
			name: "empty-alias",
			toml: "[[command]]\nname = \"a\"\naliases = [\"\"]",
			want: `couldn't build command 0 ("a"): aliases must be at least one character long`,
		},
		{
			name: "duplicate",
			toml: "[[command]]\nname = \"a\"\naliases = [\"b\"]\n[[command]]\nname = \"b\"",
			want: `couldn't add command 1 ("b"): name "b" is already used by "a"`,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg, _, err := main.Load(context.Background(), strings.NewReader(c.toml))
			if err != nil {
				t.Fatalf("couldn't load config: %v", err)
			}
			reg, err := cfg.Commands()
			if err == nil {
				t.Fatalf("no error; got %d commands", reg.Len())
			}
			if got := err.Error(); got != c.want {
				t.Errorf("wrong error:\nwant %s\ngot  %s", c.want, got)
			}
		})
	}
}

func TestExpand(t *testing.T) {
	t.Setenv("CMD_PREFIX", "?")
	t.Setenv("CMD_NAME", "ping")
	const cfgToml = "prefix = \"${CMD_PREFIX}\"\n[[command]]\nname = \"$CMD_NAME\"\naliases = [\"${CMD_NAME}2\"]\ndescription = \"$NOT_EXPANDED\""
	cfg, _, err := main.Load(context.Background(), strings.NewReader(cfgToml))
	if err != nil {
		t.Fatal(err)
	}
	eqcase(t, "Prefix", cfg.Prefix, "?")
	eqcase(t, "Command[0].Name", cfg.Command[0].Name, "ping")
	eqcase(t, "Command[0].Aliases[0]", cfg.Command[0].Aliases[0], "ping2")
	eqcase(t, "Command[0].Description", cfg.Command[0].Description, "$NOT_EXPANDED")
}
