// Package logging holds the logger shared by every package of the module.
// It is silent until the root package's SetLogger installs a real one.
package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards everything; Enabled reports false so callers skip
// formatting altogether.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(slog.New(nopHandler{}))
}

// Set installs l; nil restores the silent logger. Safe for concurrent use.
func Set(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	current.Store(l)
}

// L returns the active logger.
func L() *slog.Logger {
	return current.Load()
}

// For returns the active logger tagged with the emitting component.
func For(component string) *slog.Logger {
	return current.Load().With(slog.String("component", component))
}
