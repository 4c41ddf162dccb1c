package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/zephyrtronium/msgcmd/metrics"
	"github.com/zephyrtronium/msgcmd/perm"
	"github.com/zephyrtronium/msgcmd/registry"
)

// Result is the outcome of checking one message.
type Result struct {
	// Text is the message text.
	Text string `json:"text"`
	// Command is the name of the command the message invoked, if any.
	Command string `json:"command,omitempty"`
	// OK reports whether the message is a valid invocation.
	OK bool `json:"ok"`
	// Errors is the list of reasons the message is invalid.
	Errors []string `json:"errors,omitempty"`
	// Values is the list of coerced option values.
	Values []any `json:"values,omitempty"`
}

// Caller is the identity on whose behalf messages are checked.
type Caller struct {
	Permissions perm.Permission
	Roles       []string
	GuildRoles  []string
}

// Check validates each message against the command it invokes. Messages
// are checked concurrently; results are in the order of texts. m may be nil.
func Check(ctx context.Context, reg *registry.Registry, who Caller, texts []string, m *metrics.Metrics) ([]Result, error) {
	results := make([]Result, len(texts))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))
	for i, text := range texts {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = check(ctx, reg, who, text, m)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func check(ctx context.Context, reg *registry.Registry, who Caller, text string, m *metrics.Metrics) Result {
	r := Result{Text: text}
	c, p, ok := reg.Match(text)
	if !ok {
		if !p.Prefixed || p.Name == "" {
			r.Errors = []string{"not a command"}
		} else {
			r.Errors = []string{fmt.Sprintf("unknown command %q", p.Name)}
		}
		return r
	}
	r.Command = c.Name()
	start := time.Now()
	errs, vals := c.Validate(text, who.Permissions, who.Roles, who.GuildRoles)
	d := time.Since(start)
	kinds := make([]string, len(errs))
	for i, err := range errs {
		kinds[i] = err.Kind.String()
		r.Errors = append(r.Errors, err.Error())
	}
	if m != nil {
		m.Record(c.Name(), kinds, d)
	}
	r.OK = len(errs) == 0
	r.Values = vals
	slog.DebugContext(ctx, "validated",
		slog.String("command", c.Name()),
		slog.Bool("ok", r.OK),
		slog.Int("errors", len(errs)),
		slog.Duration("took", d),
	)
	return r
}

func cliCheck(ctx context.Context, cmd *cli.Command) error {
	slog.SetDefault(loggerFromFlags(cmd))
	reg, err := loadCommands(ctx, cmd)
	if err != nil {
		return err
	}
	perms, err := perm.ParseAll(cmd.StringSlice("perm"))
	if err != nil {
		return fmt.Errorf("couldn't parse permissions: %w", err)
	}
	who := Caller{
		Permissions: perms,
		Roles:       cmd.StringSlice("role"),
		GuildRoles:  cmd.StringSlice("guild-role"),
	}
	texts := cmd.Args().Slice()
	if len(texts) == 0 {
		texts, err = readLines(os.Stdin)
		if err != nil {
			return fmt.Errorf("couldn't read messages: %w", err)
		}
	}
	var m *metrics.Metrics
	file := cmd.String("metrics")
	if file != "" {
		m = newMetrics()
	}
	results, err := Check(ctx, reg, who, texts, m)
	if err != nil {
		return err
	}
	if cmd.Bool("json") {
		err = writeJSON(os.Stdout, results)
	} else {
		err = writeText(os.Stdout, results)
	}
	if err != nil {
		return fmt.Errorf("couldn't write results: %w", err)
	}
	if m != nil {
		reg := prometheus.NewRegistry()
		reg.MustRegister(m.Collectors()...)
		if err := prometheus.WriteToTextfile(file, reg); err != nil {
			return fmt.Errorf("couldn't write metrics: %w", err)
		}
	}
	var bad int
	for _, r := range results {
		if !r.OK {
			bad++
		}
	}
	slog.InfoContext(ctx, "checked messages", slog.Int("count", len(results)), slog.Int("invalid", bad))
	return nil
}

// readLines reads non-blank lines from r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

func writeJSON(w io.Writer, results []Result) error {
	enc := jsontext.NewEncoder(w)
	for i := range results {
		if err := json.MarshalEncode(enc, &results[i]); err != nil {
			return err
		}
	}
	return nil
}

func writeText(w io.Writer, results []Result) error {
	for _, r := range results {
		var err error
		if r.OK {
			_, err = fmt.Fprintf(w, "ok\t%s\t%v\n", r.Text, r.Values)
		} else {
			_, err = fmt.Fprintf(w, "invalid\t%s\t%s\n", r.Text, strings.Join(r.Errors, "; "))
		}
		if err != nil {
			return err
		}
	}
	return nil
}
