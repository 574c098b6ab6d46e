package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/DjordjeVuckovic/base-checker/internal/report"
	"github.com/DjordjeVuckovic/base-checker/internal/scenario"
	"github.com/DjordjeVuckovic/base-checker/internal/session"
	"github.com/DjordjeVuckovic/base-checker/internal/token"
	"github.com/urfave/cli/v2"
)

func main() {
	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	// Diagnostics go to stdout; logs stay on stderr.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp(cfg, os.Stdin, os.Stdout).RunContext(ctx, os.Args); err != nil {
		slog.Error("Command failed", "error", err)
		var ec cli.ExitCoder
		if errors.As(err, &ec) {
			os.Exit(ec.ExitCode())
		}
		os.Exit(1)
	}
}

func newApp(cfg *CheckerConfig, in io.Reader, out io.Writer) *cli.App {
	return &cli.App{
		Name:      "basecheck",
		Usage:     "Validate bin/oct/hex variable declarations and the expression that uses them",
		Writer:    out,
		ErrWriter: out,
		// Exit codes are decided in main.
		ExitErrHandler: func(*cli.Context, error) {},
		Action: func(c *cli.Context) error {
			return runRepl(c.Context, cfg, cfg.Sentinel, in, out)
		},
		Commands: []*cli.Command{
			{
				Name:  "repl",
				Usage: "Read declarations until the sentinel line, then one expression",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "sentinel",
						Usage: "line that ends the declaration block",
						Value: cfg.Sentinel,
					},
				},
				Action: func(c *cli.Context) error {
					return runRepl(c.Context, cfg, c.String("sentinel"), in, out)
				},
			},
			{
				Name:      "run",
				Usage:     "Run a YAML scenario suite and print a report",
				ArgsUsage: "<suite.yaml>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "output",
						Usage: "also write the report as JSON to this path",
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("run requires exactly one suite file", 2)
					}
					return runSuite(c.Context, c.Args().First(), c.String("output"), out)
				},
			},
			{
				Name:      "tokenize",
				Usage:     "Print the tokens of a line",
				ArgsUsage: "<text>",
				Action: func(c *cli.Context) error {
					return tokenize(strings.Join(c.Args().Slice(), " "), out)
				},
			},
		},
	}
}

func runRepl(ctx context.Context, cfg *CheckerConfig, sentinel string, in io.Reader, out io.Writer) error {
	s := session.New(session.WithSentinel(sentinel))
	slog.Debug("Session started", "session", s.ID, "sentinel", sentinel)

	return s.Run(ctx, session.NewScannerSource(in), session.NewConsoleSink(out, cfg.NoColor))
}

func runSuite(ctx context.Context, path, output string, out io.Writer) error {
	s, err := scenario.LoadFromFile(path)
	if err != nil {
		return err
	}

	res, err := scenario.Run(ctx, s)
	if err != nil {
		return err
	}

	rpt := report.Generate(res)
	report.WriteTable(rpt, out)

	if output != "" {
		if err := report.WriteJSON(rpt, output); err != nil {
			return err
		}
		slog.Info("Report written", "path", output)
	}

	if rpt.Failed > 0 {
		return cli.Exit(fmt.Sprintf("%d scenario(s) failed", rpt.Failed), 1)
	}
	return nil
}

func tokenize(line string, out io.Writer) error {
	for _, tok := range token.NewBaseLexer().Tokenize(line) {
		if _, err := fmt.Fprintf(out, "%-20s %q\n", tok.Type, tok.Value); err != nil {
			return err
		}
	}
	return nil
}
