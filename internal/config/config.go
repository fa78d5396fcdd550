// Package config handles configuration loading and defaults.
package config

// Source represents where a configuration value came from.
type Source string

const (
	SourceDefault  Source = "default"
	SourceUserFile Source = "user file"
	SourceProjFile Source = "project file"
	SourceEnv      Source = "environment"
	SourceFlag     Source = "flag"
)

// Default values.
const (
	DefaultTasksFile = "tasks.json"
	DefaultSort      = "due_date"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config holds the full configuration for taskdeck.
type Config struct {
	// Paths
	TasksFile  string `toml:"tasks_file"`
	SchemaFile string `toml:"schema_file"`

	// List behavior
	ShowCompleted bool   `toml:"show_completed"`
	Sort          string `toml:"sort"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Project root (computed)
	ProjectRoot string `toml:"-"`
}

func setDefaults(cfg *Config) {
	cfg.TasksFile = DefaultTasksFile
	cfg.SchemaFile = ""
	cfg.ShowCompleted = false
	cfg.Sort = DefaultSort
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = false
	cfg.LogCaller = false
}

// Fields returns the configurable field names in display order.
func Fields() []string {
	return []string{
		"tasks_file",
		"schema_file",
		"show_completed",
		"sort",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
	}
}

// Value returns the effective value of a field by its TOML name.
func (c *Config) Value(field string) interface{} {
	switch field {
	case "tasks_file":
		return c.TasksFile
	case "schema_file":
		return c.SchemaFile
	case "show_completed":
		return c.ShowCompleted
	case "sort":
		return c.Sort
	case "log_level":
		return c.LogLevel
	case "log_format":
		return c.LogFormat
	case "log_timestamps":
		return c.LogTimestamps
	case "log_caller":
		return c.LogCaller
	default:
		return nil
	}
}

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# taskdeck configuration file
# Values can be overridden by environment variables (TASKDECK_*) or CLI flags

# Task store file (relative paths resolve against the working directory)
tasks_file = "tasks.json"

# Custom JSON Schema for the store file (empty = built-in schema)
schema_file = ""

# Show completed tasks in list output by default
show_completed = false

# Default sort key: due_date, priority, or category
sort = "due_date"

# Logging
log_level = "info"        # debug, info, warn, error
log_format = "text"       # text, json, logfmt
log_timestamps = false
log_caller = false
`
}
