package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"

	"github.com/zephyrtronium/arith/history"
)

// env holds the streams and resources shared by commands.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	log    *slog.Logger
	render *lipgloss.Renderer

	// path is the history database, or empty to disable recording.
	path  string
	store *history.Store
}

func newEnv(stdin io.Reader, stdout io.Writer, log *slog.Logger, path string) *env {
	return &env{
		stdin:  stdin,
		stdout: stdout,
		log:    log,
		render: lipgloss.NewRenderer(stdout),
		path:   path,
	}
}

// history opens the history database on first use.
func (e *env) history(ctx context.Context) (*history.Store, error) {
	if e.store != nil {
		return e.store, nil
	}
	if e.path == "" {
		return nil, errNoHistory
	}
	s, err := history.Open(ctx, e.path)
	if err != nil {
		return nil, errHistory.wrap(err).with(slog.String("path", e.path))
	}
	e.log.DebugContext(ctx, "opened history", slog.String("path", e.path))
	e.store = s
	return s, nil
}

// record adds an entry to the history database if there is one. Failures
// are logged rather than returned so that evaluation continues.
func (e *env) record(ctx context.Context, entry history.Entry) {
	if e.path == "" {
		return
	}
	s, err := e.history(ctx)
	if err != nil {
		e.log.WarnContext(ctx, "history unavailable", slog.Any("error", err))
		e.path = ""
		return
	}
	if _, err := s.Record(ctx, entry); err != nil {
		e.log.WarnContext(ctx, "recording evaluation failed",
			slog.String("statement", entry.Statement),
			slog.Any("error", err),
		)
	}
}

func (e *env) close() {
	if e.store == nil {
		return
	}
	if err := e.store.Close(); err != nil {
		e.log.Warn("closing history failed", slog.Any("error", err))
	}
}
