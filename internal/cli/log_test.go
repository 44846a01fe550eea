package cli

import "bytes"
import "context"
import "testing"

import "github.com/charmbracelet/log"

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name string
		level log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
		{"warn at info level", log.InfoLevel, func(l *log.Logger) { l.Warn("test") }, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buf bytes.Buffer
			test.logFunc(newLogger(&buf, test.level))
			if (buf.Len() > 0) != test.wantLog {
				t.Fatalf("got log output = %v, want %v", buf.Len() > 0, test.wantLog)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	prog.done("rendered")
	if !bytes.Contains(buf.Bytes(), []byte("rendered")) {
		t.Fatalf("expected progress message, got %q", buf.String())
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) == nil {
		t.Fatal("expected default logger")
	}

	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), logger)
	if loggerFromContext(ctx) != logger {
		t.Fatal("expected the attached logger")
	}
}
