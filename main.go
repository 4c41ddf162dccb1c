package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/zephyrtronium/msgcmd/command"
	"github.com/zephyrtronium/msgcmd/metrics"
	"github.com/zephyrtronium/msgcmd/registry"
)

var app = cli.Command{
	Name:  "msgcmd",
	Usage: "Declarative chat bot text commands",

	Flags: []cli.Flag{
		&flagConfig,
		&flagEnvFile,
		&flagLog,
		&flagLogFormat,
	},
	Commands: []*cli.Command{
		{
			Name:      "pattern",
			Usage:     "Print the regular expression matching each command",
			ArgsUsage: "[command names...]",
			Flags: []cli.Flag{
				&flagPrefix,
			},
			Action: cliPattern,
		},
		{
			Name:      "usage",
			Usage:     "Print usage lines for each command",
			ArgsUsage: "[command names...]",
			Flags: []cli.Flag{
				&flagPrefix,
			},
			Action: cliUsage,
		},
		{
			Name:      "check",
			Aliases:   []string{"validate"},
			Usage:     "Validate messages against the configured commands",
			ArgsUsage: "[messages...]",
			Flags: []cli.Flag{
				&flagPrefix,
				&cli.StringSliceFlag{
					Name:  "perm",
					Usage: "Permission held by the sender, e.g. AddReactions",
				},
				&cli.StringSliceFlag{
					Name:  "role",
					Usage: "Role ID held by the sender",
				},
				&cli.StringSliceFlag{
					Name:  "guild-role",
					Usage: "Role ID that exists in the guild",
				},
				&cli.BoolFlag{
					Name:  "json",
					Usage: "Print results as JSON lines",
				},
				&cli.StringFlag{
					Name:  "metrics",
					Usage: "File to which to write Prometheus metrics after checking",
				},
			},
			Action: cliCheck,
		},
	},

	Authors: []any{
		"Branden J Brown  @zephyrtronium",
	},
	Copyright: "Copyright 2024 Branden J Brown",
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	go func() {
		<-ctx.Done()
		stop()
	}()
	err := app.Run(ctx, os.Args)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadCommands loads the config named by flags and builds its commands.
// The prefix flag, if set, overrides the environment, which overrides the
// configured prefix.
func loadCommands(ctx context.Context, cmd *cli.Command) (*registry.Registry, error) {
	e, err := loadEnv(cmd.String("env-file"))
	if err != nil {
		return nil, err
	}
	r, err := os.Open(cmd.String("config"))
	if err != nil {
		return nil, fmt.Errorf("couldn't open config file: %w", err)
	}
	defer r.Close()
	cfg, md, err := Load(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("couldn't load config: %w", err)
	}
	for _, k := range md.Undecoded() {
		slog.WarnContext(ctx, "unknown config key", slog.String("key", k.String()))
	}
	if e.Prefix != "" {
		cfg.Prefix = e.Prefix
	}
	if cmd.IsSet("prefix") {
		cfg.Prefix = cmd.String("prefix")
	}
	reg, err := cfg.Commands()
	if err != nil {
		return nil, fmt.Errorf("couldn't load commands: %w", err)
	}
	if reg.Len() == 0 {
		return nil, errNoCommands
	}
	slog.DebugContext(ctx, "loaded commands", slog.Int("count", reg.Len()), slog.String("prefix", reg.Prefix()))
	return reg, nil
}

// selectCommands returns the commands invoked by names, or all commands
// if names is empty.
func selectCommands(reg *registry.Registry, names []string) ([]*command.Command, error) {
	if len(names) == 0 {
		return slices.Collect(reg.All()), nil
	}
	r := make([]*command.Command, 0, len(names))
	for _, name := range names {
		c, ok := reg.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("no command named %q", name)
		}
		r = append(r, c)
	}
	return r, nil
}

func cliPattern(ctx context.Context, cmd *cli.Command) error {
	slog.SetDefault(loggerFromFlags(cmd))
	reg, err := loadCommands(ctx, cmd)
	if err != nil {
		return err
	}
	cmds, err := selectCommands(reg, cmd.Args().Slice())
	if err != nil {
		return err
	}
	for _, c := range cmds {
		// Compile to report patterns that package regexp would reject.
		re, err := c.Regexp(reg.Prefix())
		if err != nil {
			return fmt.Errorf("couldn't compile pattern for %s: %w", c.Name(), err)
		}
		fmt.Printf("%s\t%s\n", c.Name(), re)
	}
	return nil
}

func cliUsage(ctx context.Context, cmd *cli.Command) error {
	slog.SetDefault(loggerFromFlags(cmd))
	reg, err := loadCommands(ctx, cmd)
	if err != nil {
		return err
	}
	cmds, err := selectCommands(reg, cmd.Args().Slice())
	if err != nil {
		return err
	}
	for _, c := range cmds {
		fmt.Printf("%s\n\t%s\n", c.Usage(reg.Prefix()), c.Description())
	}
	return nil
}

var (
	flagConfig = cli.StringFlag{
		Name:       "config",
		Required:   true,
		Usage:      "TOML command definition file",
		Persistent: true,
		Action: func(ctx context.Context, cmd *cli.Command, s string) error {
			i, err := os.Stat(s)
			if err != nil {
				return err
			}
			if !i.Mode().IsRegular() {
				return errors.New("config must be a regular file")
			}
			return nil
		},
	}

	flagEnvFile = cli.StringFlag{
		Name:       "env-file",
		Usage:      "Dotenv file to load before expanding the config; ignored if missing",
		Value:      ".env",
		Persistent: true,
	}

	flagLog = cli.StringFlag{
		Name:       "log",
		Usage:      "Logging level, one of debug, info, warn, error",
		Value:      "info",
		Persistent: true,
		Action: func(ctx context.Context, c *cli.Command, s string) error {
			var l slog.Level
			return l.UnmarshalText([]byte(s))
		},
	}

	flagLogFormat = cli.StringFlag{
		Name:       "log-format",
		Usage:      "Logging format, either text or json",
		Value:      "text",
		Persistent: true,
		Action: func(ctx context.Context, c *cli.Command, s string) error {
			switch strings.ToLower(s) {
			case "text", "json":
				return nil
			default:
				return errors.New("unknown logging format")
			}
		},
	}

	flagPrefix = cli.StringFlag{
		Name:  "prefix",
		Usage: "Command prefix, overriding the configured one",
	}
)

func loggerFromFlags(cmd *cli.Command) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(cmd.String("log"))); err != nil {
		panic(err)
	}
	var h slog.Handler
	switch strings.ToLower(cmd.String("log-format")) {
	case "text":
		h = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})
	case "json":
		h = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: l})
	}
	return slog.New(h)
}

// metrics configuration
func newMetrics() *metrics.Metrics {
	return &metrics.Metrics{
		Validations: metrics.NewPromCounterVec(
			prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "msgcmd",
					Subsystem: "validate",
					Name:      "messages",
					Help:      "Number of messages validated against a command.",
				},
				[]string{"command", "result"},
			),
		),
		Failures: metrics.NewPromCounterVec(
			prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "msgcmd",
					Subsystem: "validate",
					Name:      "errors",
					Help:      "Number of validation errors by kind.",
				},
				[]string{"command", "kind"},
			),
		),
		ValidateLatency: metrics.NewPromObserverVec(
			prometheus.NewHistogramVec(
				prometheus.HistogramOpts{
					Buckets:   []float64{1e-6, 5e-6, 1e-5, 5e-5, 1e-4, 5e-4, 1e-3, 1e-2},
					Namespace: "msgcmd",
					Subsystem: "validate",
					Name:      "latency",
					Help:      "How long it takes to validate a message in seconds",
				},
				[]string{"command"},
			),
		),
	}
}
