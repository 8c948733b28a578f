package roundtrip

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with round-trip specific helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger on handler; nil means text to stderr at info.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}

	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that writes JSON records to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that writes text records to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger discards everything.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// With returns a Logger carrying extra attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}

// LogSearch logs the outcome of one search.
func (l *Logger) LogSearch(ctx context.Context, req Request, stats Stats, loops int, took time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "round trip search failed",
			"from", req.From,
			"to", req.To,
			"min_distance", req.MinDistance,
			"max_distance", req.MaxDistance,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "round trip search completed",
		"from", req.From,
		"to", req.To,
		"min_distance", req.MinDistance,
		"max_distance", req.MaxDistance,
		"loops", loops,
		"termination", stats.Termination.String(),
		"visited_nodes", stats.VisitedNodes,
		"expanded_edges", stats.ExpandedEdges,
		"evictions", stats.FrontierEvictions,
		"closing_entries", stats.ClosingEntries,
		"closure_failures", stats.ClosureFailures,
		"repeated_closures", stats.RepeatedClosures,
		"took", took,
	)
}

// LogBatch logs the outcome of a CalcBatch call.
func (l *Logger) LogBatch(ctx context.Context, total, failed int, took time.Duration) {
	if failed > 0 {
		l.WarnContext(ctx, "round trip batch completed with failures",
			"total", total,
			"failed", failed,
			"took", took,
		)
		return
	}
	l.InfoContext(ctx, "round trip batch completed", "total", total, "took", took)
}
