// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package logger holds the process-wide logger shared by memgraph and its
// sub-packages. It is silent until a logger is installed with Set.
package logger

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var ptr atomic.Pointer[slog.Logger]

func init() {
	ptr.Store(Nop())
}

// Nop returns a logger that discards all output.
func Nop() *slog.Logger { return slog.New(nopHandler{}) }

// Set installs l as the shared logger. A nil logger restores silence.
func Set(l *slog.Logger) {
	if l == nil {
		l = Nop()
	}
	ptr.Store(l)
}

// L returns the shared logger. Safe for concurrent use.
func L() *slog.Logger {
	return ptr.Load()
}
