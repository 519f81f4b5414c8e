package mathfig

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// logger holds the active slog.Logger for mathfig and its subpackages.
// The default discards everything, so library users opt in to log
// output with SetLogger.
var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(discard{}))
}

// discard is a slog.Handler whose Enabled always reports false, letting
// disabled call sites skip record formatting entirely.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

// SetLogger routes mathfig log output to l. Warn records flag degenerate
// inputs that were substituted with a fallback geometry; Debug records
// trace figure construction. Passing nil restores the silent default.
// Safe to call concurrently with logging from any goroutine.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discard{})
	}
	logger.Store(l)
}

// Logger returns the active logger. The conic, solid and render
// subpackages log through this.
func Logger() *slog.Logger {
	return logger.Load()
}
