package cli

import "context"
import "io"
import "time"

import "github.com/charmbracelet/log"

// Creates a logger writing to w with "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat: "15:04:05.00",
		Level: level,
	})
}

// Tracks the start of an operation and logs its completion with the
// elapsed time. Not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start time.Time
}

func newProgress(logger *log.Logger) *progress {
	return &progress{ logger: logger, start: time.Now() }
}

func (self *progress) done(msg string) {
	self.logger.Infof("%s (%s)", msg, time.Since(self.start).Round(time.Millisecond))
}

type ctxKey int
const loggerKey ctxKey = 0

func withLogger(ctx context.Context, logger *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// Returns the logger attached to ctx, or log.Default() if none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if logger, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return logger
	}
	return log.Default()
}
