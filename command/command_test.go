package command_test

import (
	"testing"

	"github.com/zephyrtronium/msgcmd/command"
	"github.com/zephyrtronium/msgcmd/option"
)

func fullCommand() *command.Command {
	return command.New().
		SetName("test-name").
		SetDescription("a test").
		SetAliases("t", "TEST").
		AddStringOption(func(o *option.Option) *option.Option {
			return o.SetName("string").SetDescription("string option")
		}).
		AddNumberOption(func(o *option.Option) *option.Option {
			return o.SetName("number").SetDescription("number option")
		}).
		AddBooleanOption(func(o *option.Option) *option.Option {
			return o.SetName("boolean").SetDescription("boolean option")
		}).
		AddMemberOption(func(o *option.Option) *option.Option {
			return o.SetName("member").SetDescription("member option")
		}).
		AddChannelOption(func(o *option.Option) *option.Option {
			return o.SetName("channel").SetDescription("channel option")
		}).
		Build()
}

func TestPattern(t *testing.T) {
	cases := []struct {
		name   string
		cmd    *command.Command
		prefix string
		want   string
	}{
		{
			name:   "full",
			cmd:    fullCommand(),
			prefix: ">>",
			want:   `(?m)^>>(test-name|t|TEST)\s+"(.+)"\s+(\d+)\s+(true|false)\s+<@!?(\d{17,19})>\s+<#(\d{17,19})>$`,
		},
		{
			name:   "bare",
			cmd:    command.New().SetName("ping").Build(),
			prefix: "!",
			want:   `(?m)^!(ping)$`,
		},
		{
			name:   "escaped",
			cmd:    command.New().SetName("a.b").SetAliases("c+").Build(),
			prefix: "$",
			want:   `(?m)^\$(a\.b|c\+)$`,
		},
		{
			name: "choices",
			cmd: command.New().SetName("hour").AddNumberOption(func(o *option.Option) *option.Option {
				return o.SetMinValue(0).SetMaxValue(9)
			}).AddStringOption(func(o *option.Option) *option.Option {
				return o.AddChoice("one", "choice-1").AddChoice("two", "choice-2")
			}).Build(),
			prefix: "!",
			want:   `(?m)^!(hour)\s+(\d)\s+"(choice-1|choice-2)"$`,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.cmd.Pattern(c.prefix); got != c.want {
				t.Errorf("wrong pattern:\nwant %s\ngot  %s", c.want, got)
			}
			if got := c.cmd.Pattern(c.prefix); got != c.want {
				t.Errorf("pattern changed on second call: %s", got)
			}
		})
	}
}

func TestRegexp(t *testing.T) {
	c := fullCommand()
	re, err := c.Regexp(">>")
	if err != nil {
		t.Fatal(err)
	}
	const id = "12345678901234567"
	cases := []struct {
		text string
		want bool
	}{
		{`>>test-name "this" 12 true <@!` + id + `> <#` + id + `>`, true},
		{`>>t "this" 12 false <@` + id + `> <#` + id + `>`, true},
		{`>>TEST "this" 12 true <@` + id + `> <#` + id + `>`, true},
		{`>>test "this" 12 true <@` + id + `> <#` + id + `>`, false},
		{`>>t "this" twelve true <@` + id + `> <#` + id + `>`, false},
		{`>>t "this" 12 true <@` + id + `>`, false},
		{`!t "this" 12 true <@` + id + `> <#` + id + `>`, false},
		{"first line\n" + `>>t "this" 12 true <@` + id + `> <#` + id + `>`, true},
	}
	for _, c := range cases {
		if got := re.MatchString(c.text); got != c.want {
			t.Errorf("wrong match for %q: want %t, got %t", c.text, c.want, got)
		}
	}
	m := re.FindStringSubmatch(`>>t "this" 12 true <@!` + id + `> <#` + id + `>`)
	want := []string{"t", "this", "12", "true", id, id}
	if len(m) != len(want)+1 {
		t.Fatalf("wrong number of submatches: want %d, got %d", len(want)+1, len(m))
	}
	for i, w := range want {
		if m[i+1] != w {
			t.Errorf("wrong submatch %d: want %q, got %q", i+1, w, m[i+1])
		}
	}
	other, err := c.Regexp(">>")
	if err != nil {
		t.Fatal(err)
	}
	if other == re {
		t.Errorf("Regexp returned the same regexp twice")
	}
}

func TestMatches(t *testing.T) {
	c := fullCommand()
	for _, name := range []string{"test-name", "t", "TEST"} {
		if !c.Matches(name) {
			t.Errorf("%q didn't match", name)
		}
	}
	for _, name := range []string{"test", "T", "", ">>t"} {
		if c.Matches(name) {
			t.Errorf("%q matched", name)
		}
	}
}

func TestUsage(t *testing.T) {
	c := command.New().SetName("play").
		AddStringOption(func(o *option.Option) *option.Option { return o.SetName("song") }).
		AddNumberOption(func(o *option.Option) *option.Option {
			return o.SetName("speed").AddNumberChoice("slow", 1).AddNumberChoice("fast", 2)
		}).
		AddBooleanOption(func(o *option.Option) *option.Option { return o.SetName("loop") }).
		Build()
	want := `!play <song: text> <speed: 1|2> <loop: true/false>`
	if got := c.Usage("!"); got != want {
		t.Errorf("wrong usage: want %q, got %q", want, got)
	}
}
