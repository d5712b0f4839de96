package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/infiniscroll/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, e.g. "Replayed 3 scenarios (12ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none
// is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports engine passes to a logger at debug level.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) observability.EngineHooks {
	return logHooks{logger: l.WithPrefix("engine")}
}

func (h logHooks) OnTile(visible, added, removed int, d time.Duration) {
	if added == 0 && removed == 0 {
		return
	}
	h.logger.Debug("tile", "visible", visible, "added", added, "removed", removed, "duration", d)
}

func (h logHooks) OnRecenter(delta float64, forced bool) {
	h.logger.Debug("recenter", "delta", delta, "forced", forced)
}

func (h logHooks) OnRelayout(anchor, repositioned int, d time.Duration) {
	h.logger.Debug("relayout", "anchor", anchor, "cells", repositioned, "duration", d)
}

func (h logHooks) OnPageChange(from, to int) {
	h.logger.Debug("page", "from", from, "to", to)
}
