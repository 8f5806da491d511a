package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the CLI logger. Lines carry a short wall-clock stamp
// ("14:32:01.45") since runs are interactive and rarely span days.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times a slow command step, such as clearing the file cache.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at info level with the elapsed time as a key.
func (p *progress) done(msg string, keyvals ...any) {
	elapsed := time.Since(p.start).Round(time.Millisecond)
	p.logger.Info(msg, append(keyvals, "elapsed", elapsed)...)
}

type loggerCtxKey struct{}

// withLogger attaches l to ctx for command handlers.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, l)
}

// loggerFromContext returns the logger set by setup, falling back to
// log.Default() for commands run without it (tests calling RunE directly).
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerCtxKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
