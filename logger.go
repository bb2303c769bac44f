package aster

import (
	"context"
	"log/slog"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely, making
// disabled logging effectively zero-cost on the frame path.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// logger is the active logger. aster is single-threaded, so a plain variable
// suffices.
var logger = slog.New(nopHandler{})

// SetLogger configures logging for the package. By default aster produces no
// log output. Pass nil to restore the silent default.
//
// Log levels used:
//   - [slog.LevelWarn]: plugin failures, renderer anomalies
//   - [slog.LevelDebug]: per-frame diagnostics
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	logger = l
}
