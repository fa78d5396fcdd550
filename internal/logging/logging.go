// Package logging builds the console logger from configuration.
package logging

import (
	"os"

	"github.com/charmbracelet/log"
)

// Options holds configuration for console logging.
type Options struct {
	Level      string // debug, info, warn, error
	Format     string // text, json, logfmt
	Timestamps bool
	Caller     bool
	Prefix     string
}

// DefaultOptions returns default options for console logging.
func DefaultOptions() Options {
	return Options{
		Level:  "info",
		Format: "text",
		Prefix: "taskdeck",
	}
}

// New creates a leveled console logger writing to stderr. Unknown
// levels fall back to info, unknown formats to text.
func New(opts Options) *log.Logger {
	level := log.InfoLevel
	if parsed, err := log.ParseLevel(opts.Level); err == nil {
		level = parsed
	}

	formatter := log.TextFormatter
	switch opts.Format {
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: opts.Timestamps,
		ReportCaller:    opts.Caller,
		Prefix:          opts.Prefix,
	})
}
