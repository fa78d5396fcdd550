package cmd

import (
	"flag"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/task"
)

// checkCommand validates the task file against its schema.
func checkCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("taskdeck check", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := task.ValidateFile(cfg.TasksFile, task.ValidationOptions{
		SchemaPath: cfg.SchemaFile,
	})
	if err != nil {
		return err
	}

	for _, warning := range result.Warnings {
		fmt.Printf("warning: %s\n", warning)
	}
	if result.Valid {
		mode := "minimal checks"
		if result.UsedSchema {
			mode = "JSON Schema"
		}
		fmt.Printf("%s: OK (%s)\n", cfg.TasksFile, mode)
		return nil
	}

	for _, err := range result.Errors {
		fmt.Printf("error: %s\n", err)
	}
	return fmt.Errorf("%s: %d validation error(s)", cfg.TasksFile, len(result.Errors))
}

// configCommand prints the effective configuration with the source of
// each value.
func configCommand(cfg *config.Config, sources map[string]config.Source, args []string) error {
	fs := flag.NewFlagSet("taskdeck config", flag.ContinueOnError)
	example := fs.Bool("example", false, "Print an example config file instead")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *example {
		fmt.Print(config.ExampleConfig())
		return nil
	}

	for _, field := range config.Fields() {
		fmt.Printf("%-16s = %-24v (%s)\n", field, cfg.Value(field), sources[field])
	}
	return nil
}
