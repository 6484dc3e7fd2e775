package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type historyCmd struct {
	Limit int `short:"l" default:"20" help:"Maximum number of entries to list. Zero or less lists all."`
}

// Run lists recent evaluations, newest first.
func (c *historyCmd) Run(ctx context.Context, e *env) error {
	s, err := e.history(ctx)
	if err != nil {
		return err
	}
	entries, err := s.Recent(ctx, c.Limit)
	if err != nil {
		return errHistory.wrap(err)
	}
	e.log.DebugContext(ctx, "listing history", slog.Int("entries", len(entries)))
	if len(entries) == 0 {
		return nil
	}
	bad := e.render.NewStyle().Foreground(lipgloss.Color("1"))
	rows := make([][]string, 0, len(entries))
	for _, x := range entries {
		r := x.Result
		if !x.Valid {
			r = bad.Render("invalid")
		}
		rows = append(rows, []string{
			fmt.Sprint(x.ID),
			x.At.Local().Format(time.DateTime),
			x.Statement,
			r,
			x.Error,
		})
	}
	head := e.render.NewStyle().Bold(true).Padding(0, 1)
	cell := e.render.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(e.render.NewStyle().Faint(true)).
		Headers("ID", "TIME", "STATEMENT", "RESULT", "ERROR").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return head
			}
			return cell
		}).
		Rows(rows...)
	fmt.Fprintln(e.stdout, t.String())
	return nil
}
