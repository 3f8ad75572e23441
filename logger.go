package trail

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while the frame loop is logging.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for trail and all its sub-packages.
// By default, trail produces no log output.
//
// Pass nil to restore the silent default.
//
// Log levels used by trail:
//   - [slog.LevelDebug]: sample expiry, decoration spawns, tween completion
//   - [slog.LevelInfo]: loop start/stop, subscriber connect/disconnect
//   - [slog.LevelWarn]: surface flush failures, dropped subscribers
//
// Example:
//
//	trail.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by trail.
// Sub-packages (surface/, internal/server) call this to share the same
// configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
