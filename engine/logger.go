// Copyright 2026 The Diorama Authors. All rights reserved.

package engine

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// The package logs nothing by default. Applications that
// want diagnostics from the engine install a logger with
// SetLogger.

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(nopHandler{}))
}

// SetLogger sets the logger used by this package.
// A nil logger restores the default, which discards all
// records.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	logger.Store(l)
}

// Logger returns the logger used by this package.
func Logger() *slog.Logger { return logger.Load() }

// nopHandler is a slog.Handler that discards everything.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }
