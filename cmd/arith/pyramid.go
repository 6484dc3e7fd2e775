package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/zephyrtronium/arith/pyramid"
)

type pyramidCmd struct {
	Values []string `arg:"" optional:"" help:"Integers to arrange. null, nil, or _ is a null element."`
	Blank  bool     `help:"Leave vacant cells blank instead of printing 0."`
}

// Run builds the pyramid and prints it as an aligned grid.
func (c *pyramidCmd) Run(ctx context.Context, e *env) error {
	nums := make([]*int, len(c.Values))
	for i, s := range c.Values {
		switch s {
		case "null", "nil", "_":
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return errInteger.with(slog.Int("arg", i), slog.String("value", s))
		}
		nums[i] = &n
	}
	grid, err := pyramid.Build(nums)
	if err != nil {
		return errPyramid.wrap(err).with(slog.Int("count", len(nums)))
	}
	e.log.DebugContext(ctx, "built pyramid", slog.Int("rows", len(grid)))
	fmt.Fprintln(e.stdout, c.render(e.render, grid))
	return nil
}

func (c *pyramidCmd) render(r *lipgloss.Renderer, grid [][]int) string {
	k := len(grid)
	rows := make([][]string, k)
	for i, row := range grid {
		rows[i] = make([]string, len(row))
		for j, v := range row {
			d := j - (k - 1 - i)
			if c.Blank && (d < 0 || d > 2*i || d%2 != 0) {
				continue
			}
			rows[i][j] = strconv.Itoa(v)
		}
	}
	cell := r.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	t := table.New().
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(false).
		StyleFunc(func(row, col int) lipgloss.Style { return cell }).
		Rows(rows...)
	return t.String()
}
