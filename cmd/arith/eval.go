package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zephyrtronium/arith"
	"github.com/zephyrtronium/arith/history"
)

type evalCmd struct {
	Statements []string `arg:"" optional:"" help:"Statements to evaluate. Reads --in or stdin if there are none."`
	In         string   `short:"i" help:"Input file, or - for stdin."`
	Lines      bool     `short:"n" help:"Treat each input line as a separate statement."`
	Echo       bool     `help:"Print each statement in postfix order before its result."`
	Places     int      `default:"4" help:"Maximum digits after the decimal point."`
}

func (c *evalCmd) Validate() error {
	if c.Places < 0 || c.Places > math.MaxInt32 {
		return errPlaces.with(slog.Int("places", c.Places))
	}
	return nil
}

// Run evaluates every statement, printing one result line per statement.
func (c *evalCmd) Run(ctx context.Context, e *env) error {
	stmts := c.Statements
	if len(stmts) == 0 || c.In != "" {
		in, err := c.read(e)
		if err != nil {
			return err
		}
		stmts = append(stmts, in...)
	}
	bad := e.render.NewStyle().Foreground(lipgloss.Color("1"))
	opt := arith.Places(c.Places)
	invalid := 0
	for _, s := range stmts {
		r, err := c.eval(s, opt)
		if err != nil {
			invalid++
			attrs := []slog.Attr{
				slog.String("statement", s),
				slog.String("class", arith.ClassOf(err).String()),
				slog.Any("error", err),
			}
			var in arith.InputError
			if errors.As(err, &in) {
				attrs = append(attrs, slog.Int("pos", in.Pos()))
			}
			e.log.LogAttrs(ctx, slog.LevelDebug, "invalid statement", attrs...)
			fmt.Fprintln(e.stdout, bad.Render("invalid"))
			e.record(ctx, history.Entry{Statement: s, Error: err.Error()})
			continue
		}
		fmt.Fprintln(e.stdout, r)
		e.record(ctx, history.Entry{Statement: s, Result: r, Valid: true})
	}
	if invalid > 0 {
		return errInvalid.with(slog.Int("invalid", invalid), slog.Int("total", len(stmts)))
	}
	return nil
}

// eval evaluates one statement and formats its result, prefixed with its
// postfix form if echoing.
func (c *evalCmd) eval(s string, opt arith.FormatOption) (string, error) {
	x, err := arith.ParseString(s)
	if err != nil {
		return "", err
	}
	v, err := x.Eval()
	if err != nil {
		return "", err
	}
	r := arith.Format(v, opt)
	if c.Echo {
		return x.String() + " : " + r, nil
	}
	return r, nil
}

// read collects statements from the input file or stdin.
func (c *evalCmd) read(e *env) ([]string, error) {
	var src io.Reader = e.stdin
	if c.In != "" && c.In != "-" {
		f, err := os.Open(c.In)
		if err != nil {
			return nil, errInput.wrap(err).with(slog.String("file", c.In))
		}
		defer f.Close()
		src = f
	}
	if !c.Lines {
		b, err := io.ReadAll(src)
		if err != nil {
			return nil, errInput.wrap(err)
		}
		return []string{string(b)}, nil
	}
	var r []string
	sc := bufio.NewScanner(src)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		r = append(r, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errInput.wrap(err)
	}
	return r, nil
}
