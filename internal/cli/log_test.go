package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	pixerr "github.com/ironsheep/pixfx/internal/errors"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	if logger == nil {
		t.Fatal("newLogger() returned nil")
	}

	logger.Info("test message")

	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("logger should have written the message, got %q", buf.String())
	}
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "info at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Info("test") },
			wantLog: true,
		},
		{
			name:    "debug at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: false,
		},
		{
			name:    "debug at debug level",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			tt.logFunc(logger)

			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("logged: got %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestPrintError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		want     string
		wantHint bool
	}{
		{
			name:     "validation error",
			err:      pixerr.New(pixerr.ErrCodeInvalidInput, "invalid number of cut values"),
			want:     "Error: invalid number of cut values",
			wantHint: true,
		},
		{
			name:     "processing error",
			err:      pixerr.Wrap(pixerr.ErrCodeDecode, errors.New("unexpected EOF"), "failed to open in.png"),
			want:     "Error: failed to open in.png: unexpected EOF",
			wantHint: false,
		},
		{
			name:     "argument error",
			err:      errors.New("accepts 2 arg(s), received 0"),
			want:     "Error: accepts 2 arg(s), received 0",
			wantHint: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printError(&buf, tt.err)

			out := buf.String()
			if !strings.Contains(out, tt.want) {
				t.Errorf("output should contain %q, got %q", tt.want, out)
			}
			if code := pixerr.GetCode(tt.err); code != "" && strings.Contains(out, string(code)) {
				t.Errorf("error code should not be shown, got %q", out)
			}
			if got := strings.Contains(out, "--help"); got != tt.wantHint {
				t.Errorf("help hint: got %v, want %v", got, tt.wantHint)
			}
		})
	}
}
