package main

import (
	"log/slog"
	"strings"
)

// cmdError is a command error with attributes for structured logging.
type cmdError struct {
	msg   string
	err   error
	attrs []slog.Attr
}

func newError(msg string) *cmdError {
	return &cmdError{msg: msg}
}

func (e *cmdError) Error() string {
	part := make([]string, 0, 2)
	if e.msg != "" {
		part = append(part, e.msg)
	}
	if e.err != nil {
		part = append(part, e.err.Error())
	}
	return strings.Join(part, ": ")
}

func (e *cmdError) Unwrap() error { return e.err }

func (e *cmdError) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)
	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}
	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}
	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// wrap creates a new error wrapping err with e's message and attributes.
func (e *cmdError) wrap(err error) *cmdError {
	return &cmdError{msg: e.msg, err: err, attrs: e.attrs}
}

// with creates a new error with additional attributes.
func (e *cmdError) with(attrs ...slog.Attr) *cmdError {
	a := make([]slog.Attr, 0, len(e.attrs)+len(attrs))
	a = append(a, e.attrs...)
	a = append(a, attrs...)
	return &cmdError{msg: e.msg, err: e.err, attrs: a}
}

var (
	errInvalid   = newError("invalid statements")
	errInput     = newError("read input")
	errPyramid   = newError("build pyramid")
	errInteger   = newError("invalid integer")
	errNoHistory = newError("no history database (use --history)")
	errHistory   = newError("history database")
	errPlaces    = newError("places out of range")
)
