// Command arith evaluates arithmetic statements and builds number pyramids.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

// CLI is the command line interface of arith.
type CLI struct {
	Log     logConfig       `embed:"" group:"log" prefix:"log-"`
	Config  kong.ConfigFlag `help:"Load flag defaults from a YAML file."`
	History string          `help:"Record evaluations in this sqlite database." env:"ARITH_HISTORY"`

	Eval    evalCmd    `cmd:"" default:"withargs" help:"Evaluate statements."`
	Pyramid pyramidCmd `cmd:"" help:"Arrange integers into a pyramid."`
	Recent  historyCmd `cmd:"" name:"history" help:"List recorded evaluations."`
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cli CLI
	code := -1
	parser, err := kong.New(&cli,
		kong.Name("arith"),
		kong.Description("Evaluate arithmetic statements over + - * / and parentheses."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Exit(func(c int) { code = c }),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true, Summary: true}),
		kong.Configuration(loadYAML),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	ktx, err := parser.Parse(args)
	if code >= 0 {
		// Help or a fatal parse error already reported itself.
		return code
	}
	if err != nil {
		parser.Errorf("%s", err)
		return 1
	}

	log := cli.Log.logger(stderr)
	e := newEnv(stdin, stdout, log, cli.History)
	defer e.close()
	if err := ktx.Run(e, &cli); err != nil {
		log.ErrorContext(ctx, "command failed",
			slog.String("command", ktx.Command()),
			slog.Any("error", err),
		)
		return 1
	}
	return 0
}
