package memory

import (
	"log/slog"
	"sync/atomic"
)

// loggerFunc returns the logger of the package that owns the allocator.
var loggerFunc atomic.Pointer[func() *slog.Logger]

var discard = slog.New(slog.DiscardHandler)

// SetLoggerFunc makes the allocator log through fn. The imageframe package
// passes its own Logger so both share one configuration. Passing nil
// silences the allocator.
func SetLoggerFunc(fn func() *slog.Logger) {
	if fn == nil {
		loggerFunc.Store(nil)
		return
	}
	loggerFunc.Store(&fn)
}

// Logger returns the logger used for allocation diagnostics.
func Logger() *slog.Logger {
	if fn := loggerFunc.Load(); fn != nil {
		if l := (*fn)(); l != nil {
			return l
		}
	}
	return discard
}
