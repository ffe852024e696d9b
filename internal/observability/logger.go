package observability

import (
	"log/slog"
	"os"
)

// NewLogger builds the process-wide JSON logger. Dev gets debug level;
// everything else stays at info. When tracing is on, records carry the
// active trace/span ids via TraceHandler.
func NewLogger(env string, withTrace bool) *slog.Logger {
	level := slog.LevelInfo

	if env == "dev" {
		level = slog.LevelDebug
	}

	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})

	if withTrace {
		handler = NewTraceHandler(handler)
	}

	return slog.New(handler)
}
