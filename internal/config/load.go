package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (~/.config/taskdeck/taskdeck.toml or ~/.taskdeck.toml)
// 3. Project config file (taskdeck.toml or .taskdeck.toml in current directory)
// 4. Environment variables (TASKDECK_*)
// 5. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg, _, err := LoadWithSources(fs, args)
	return cfg, err
}

// LoadWithSources loads configuration and tracks where each value came
// from, for the config command's output.
func LoadWithSources(fs *flag.FlagSet, args []string) (*Config, map[string]Source, error) {
	cfg := &Config{}
	sources := make(map[string]Source)

	// 1. Defaults
	setDefaults(cfg)
	for _, field := range Fields() {
		sources[field] = SourceDefault
	}

	// 2. User config file
	if path := findUserConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path, sources, SourceUserFile); err != nil {
			return nil, nil, fmt.Errorf("loading user config file %s: %w", path, err)
		}
	}

	// 3. Project config file (overrides user config)
	if path := findProjectConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path, sources, SourceProjFile); err != nil {
			return nil, nil, fmt.Errorf("loading project config file %s: %w", path, err)
		}
	}

	// 4. Environment
	loadFromEnv(cfg, sources)

	// 5. CLI flags override everything
	if err := parseFlags(cfg, fs, args, sources); err != nil {
		return nil, nil, fmt.Errorf("parsing flags: %w", err)
	}

	// 6. Derived values
	if err := finalizeConfig(cfg); err != nil {
		return nil, nil, fmt.Errorf("finalizing config: %w", err)
	}

	return cfg, sources, nil
}

// loadConfigFile loads TOML config from the given file, attributing
// only the keys the file actually defines.
func loadConfigFile(cfg *Config, path string, sources map[string]Source, source Source) error {
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	for _, field := range Fields() {
		if meta.IsDefined(field) {
			sources[field] = source
		}
	}
	return nil
}

// parseFlags registers the global flags on fs, parses args, and applies
// any flags the user actually set.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]Source) error {
	tasksFile := fs.String("file", cfg.TasksFile, "Task store file")
	schemaFile := fs.String("schema", cfg.SchemaFile, "Custom JSON Schema for the store file")
	sortKey := fs.String("sort", cfg.Sort, "Default sort key (due_date|priority|category)")
	showCompleted := fs.Bool("show-completed", cfg.ShowCompleted, "Show completed tasks by default")
	logLevel := fs.String("log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	logFormat := fs.String("log-format", cfg.LogFormat, "Log format (text|json|logfmt)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "file":
			cfg.TasksFile = *tasksFile
			sources["tasks_file"] = SourceFlag
		case "schema":
			cfg.SchemaFile = *schemaFile
			sources["schema_file"] = SourceFlag
		case "sort":
			cfg.Sort = *sortKey
			sources["sort"] = SourceFlag
		case "show-completed":
			cfg.ShowCompleted = *showCompleted
			sources["show_completed"] = SourceFlag
		case "log-level":
			cfg.LogLevel = *logLevel
			sources["log_level"] = SourceFlag
		case "log-format":
			cfg.LogFormat = *logFormat
			sources["log_format"] = SourceFlag
		}
	})

	return nil
}

// finalizeConfig computes derived values and resolves paths.
func finalizeConfig(cfg *Config) error {
	cfg.TasksFile = expandPath(cfg.TasksFile)
	cfg.SchemaFile = expandPath(cfg.SchemaFile)

	if cfg.ProjectRoot == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		cfg.ProjectRoot = wd
	}

	if !filepath.IsAbs(cfg.TasksFile) {
		cfg.TasksFile = filepath.Join(cfg.ProjectRoot, cfg.TasksFile)
	}
	if cfg.SchemaFile != "" && !filepath.IsAbs(cfg.SchemaFile) {
		cfg.SchemaFile = filepath.Join(cfg.ProjectRoot, cfg.SchemaFile)
	}

	return nil
}

// findUserConfigFile returns the first existing user-level config file.
func findUserConfigFile() string {
	var candidates []string
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "taskdeck", "taskdeck.toml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".taskdeck.toml"))
	}
	for _, path := range candidates {
		if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
			return path
		}
	}
	return ""
}

// findProjectConfigFile returns the first existing project-level config
// file in the current directory.
func findProjectConfigFile() string {
	for _, name := range []string{"taskdeck.toml", ".taskdeck.toml"} {
		if fi, err := os.Stat(name); err == nil && !fi.IsDir() {
			return name
		}
	}
	return ""
}
