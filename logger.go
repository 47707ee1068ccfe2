package colorwheel

import (
	"log/slog"

	"github.com/gogpu/colorwheel/internal/logx"
)

// SetLogger configures the logger for colorwheel and all its sub-packages.
// By default, colorwheel produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by colorwheel:
//   - [slog.LevelDebug]: hit-testing and marker placement
//   - [slog.LevelWarn]: color text that could not be parsed, fallback used
//   - [slog.LevelError]: conversions that cannot happen for valid input
//
// Example:
//
//	colorwheel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logx.Set(l)
}

// Logger returns the current logger used by colorwheel.
// Sub-packages read the same logger through internal/logx.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logx.Get()
}
