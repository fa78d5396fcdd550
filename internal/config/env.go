package config

import (
	"os"
	"strconv"
)

// loadFromEnv overrides config from TASKDECK_* environment variables.
func loadFromEnv(cfg *Config, sources map[string]Source) {
	if v := os.Getenv("TASKDECK_FILE"); v != "" {
		cfg.TasksFile = v
		sources["tasks_file"] = SourceEnv
	}
	if v := os.Getenv("TASKDECK_SCHEMA"); v != "" {
		cfg.SchemaFile = v
		sources["schema_file"] = SourceEnv
	}
	if v := os.Getenv("TASKDECK_SORT"); v != "" {
		cfg.Sort = v
		sources["sort"] = SourceEnv
	}
	if v := os.Getenv("TASKDECK_SHOW_COMPLETED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.ShowCompleted = b
			sources["show_completed"] = SourceEnv
		}
	}
	if v := os.Getenv("TASKDECK_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
		sources["log_level"] = SourceEnv
	}
	if v := os.Getenv("TASKDECK_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
		sources["log_format"] = SourceEnv
	}
}
