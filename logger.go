package main

import (
	"context"
	"log/slog"
)

// nopHandler discards every record. Enabled returns false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var logger = newNopLogger()

// SetLogger replaces the logger used by the registry and the UI. Nil
// restores the silent default. The program is single-threaded, so no
// synchronisation is needed.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	logger = l
}

func Logger() *slog.Logger {
	return logger
}
