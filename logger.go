package imageframe

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/imageframe/internal/memory"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip building attributes entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
	memory.SetLoggerFunc(Logger)
}

// SetLogger configures the logger for imageframe and its allocator.
// By default imageframe produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore silent logging.
//
// Log levels used by imageframe:
//   - [slog.LevelDebug]: allocation and release of owned buffers, pool reuse
//   - [slog.LevelWarn]: release failures, mmap fallback to the Go heap
//
// Example:
//
//	imageframe.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by imageframe.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
