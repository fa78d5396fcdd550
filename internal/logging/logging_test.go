package logging

import (
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  log.Level
	}{
		{name: "debug", level: "debug", want: log.DebugLevel},
		{name: "info", level: "info", want: log.InfoLevel},
		{name: "warn", level: "warn", want: log.WarnLevel},
		{name: "error", level: "error", want: log.ErrorLevel},
		{name: "unknown falls back to info", level: "chatty", want: log.InfoLevel},
		{name: "empty falls back to info", level: "", want: log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Level = tt.level
			logger := New(opts)
			if got := logger.GetLevel(); got != tt.want {
				t.Errorf("level: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewFormats(t *testing.T) {
	for _, format := range []string{"text", "json", "logfmt", "unknown"} {
		opts := DefaultOptions()
		opts.Format = format
		if logger := New(opts); logger == nil {
			t.Errorf("New returned nil for format %q", format)
		}
	}
}
