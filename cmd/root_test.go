// Package cmd provides tests for CLI command handlers.
package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/taskdeck/taskdeck/internal/task"
)

// isolate keeps host config files and task stores out of the test.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, ".config"))

	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(oldWd) })
	return tmp
}

func TestRun(t *testing.T) {
	t.Run("shows help with --help flag", func(t *testing.T) {
		isolate(t)
		if err := Run(context.Background(), []string{"--help"}); err != nil {
			t.Errorf("expected no error with --help, got %v", err)
		}
	})

	t.Run("shows version with --version flag", func(t *testing.T) {
		isolate(t)
		if err := Run(context.Background(), []string{"--version"}); err != nil {
			t.Errorf("expected no error with --version, got %v", err)
		}
	})

	t.Run("unknown command returns error", func(t *testing.T) {
		isolate(t)
		err := Run(context.Background(), []string{"frobnicate"})
		if err == nil {
			t.Fatal("expected error for unknown command, got nil")
		}
		if !strings.Contains(err.Error(), "unknown command") {
			t.Errorf("expected 'unknown command' error, got %v", err)
		}
	})

	t.Run("list works with no task file", func(t *testing.T) {
		isolate(t)
		if err := Run(context.Background(), []string{"list"}); err != nil {
			t.Errorf("list on a missing store should not fail, got %v", err)
		}
	})
}

func TestAddListFlow(t *testing.T) {
	tmp := isolate(t)
	ctx := context.Background()
	store := filepath.Join(tmp, "tasks.json")

	err := Run(ctx, []string{"add", "-title", "Write report", "-priority", "High", "-category", "Work", "-due", "2030-01-01"})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	err = Run(ctx, []string{"add", "-title", "Buy milk", "-due", "2030-02-01"})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	result, err := task.Load(store)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(result.Tasks) != 2 {
		t.Fatalf("tasks: got %d, want 2", len(result.Tasks))
	}
	if result.Tasks[0].ID != 1 || result.Tasks[1].ID != 2 {
		t.Errorf("ids: got %d, %d, want 1, 2", result.Tasks[0].ID, result.Tasks[1].ID)
	}
	if result.Tasks[0].Priority != task.PriorityHigh {
		t.Errorf("priority: got %q, want High", result.Tasks[0].Priority)
	}

	if err := Run(ctx, []string{"list", "-priority", "High"}); err != nil {
		t.Errorf("list failed: %v", err)
	}
	if err := Run(ctx, []string{"list", "-sort", "nonsense"}); !errors.Is(err, task.ErrInvalidSortKey) {
		t.Errorf("expected ErrInvalidSortKey, got %v", err)
	}
}

func TestAddValidation(t *testing.T) {
	isolate(t)
	ctx := context.Background()

	tests := []struct {
		name string
		args []string
	}{
		{name: "missing title", args: []string{"add", "-due", "2030-01-01"}},
		{name: "missing due date", args: []string{"add", "-title", "A"}},
		{name: "bad due date", args: []string{"add", "-title", "A", "-due", "tomorrow"}},
		{name: "bad priority", args: []string{"add", "-title", "A", "-due", "2030-01-01", "-priority", "Urgent"}},
		{name: "repeat without recur", args: []string{"add", "-title", "A", "-due", "2030-01-01", "-repeat", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Run(ctx, tt.args); err == nil {
				t.Errorf("expected error for %v, got nil", tt.args)
			}
		})
	}
}

func TestAddRecurring(t *testing.T) {
	tmp := isolate(t)
	ctx := context.Background()

	err := Run(ctx, []string{"add", "-title", "Water plants", "-due", "2030-01-01", "-recur", "daily", "-repeat", "3"})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	result, err := task.Load(filepath.Join(tmp, "tasks.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(result.Tasks) != 3 {
		t.Fatalf("tasks: got %d, want 3", len(result.Tasks))
	}
	wantDates := []string{"2030-01-01", "2030-01-02", "2030-01-03"}
	for i, tk := range result.Tasks {
		if got := tk.DueDate.String(); got != wantDates[i] {
			t.Errorf("instance %d due: got %q, want %q", i, got, wantDates[i])
		}
	}
}

func TestDoneEditRemove(t *testing.T) {
	tmp := isolate(t)
	ctx := context.Background()
	store := filepath.Join(tmp, "tasks.json")

	if err := Run(ctx, []string{"add", "-title", "Old", "-due", "2030-01-01"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := Run(ctx, []string{"done", "1"}); err != nil {
		t.Fatalf("done failed: %v", err)
	}
	result, _ := task.Load(store)
	if !result.Tasks[0].Completed {
		t.Error("task not completed after done")
	}

	if err := Run(ctx, []string{"edit", "1", "-title", "New"}); err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	result, _ = task.Load(store)
	if result.Tasks[0].Title != "New" {
		t.Errorf("title: got %q, want New", result.Tasks[0].Title)
	}

	if err := Run(ctx, []string{"edit", "999", "-title", "X"}); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}

	if err := Run(ctx, []string{"rm", "1"}); err != nil {
		t.Fatalf("rm failed: %v", err)
	}
	result, _ = task.Load(store)
	if len(result.Tasks) != 0 {
		t.Errorf("tasks after rm: got %d, want 0", len(result.Tasks))
	}

	if err := Run(ctx, []string{"rm", "1"}); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestCheckCommand(t *testing.T) {
	tmp := isolate(t)
	ctx := context.Background()

	if err := Run(ctx, []string{"add", "-title", "A", "-due", "2030-01-01"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := Run(ctx, []string{"check"}); err != nil {
		t.Errorf("check on a valid store failed: %v", err)
	}

	bad := `[{"id": 1, "title": "", "priority": "High", "category": "Work", "due_date": "2030-01-01", "completed": false}]`
	if err := os.WriteFile(filepath.Join(tmp, "tasks.json"), []byte(bad), 0644); err != nil {
		t.Fatalf("write store: %v", err)
	}
	if err := Run(ctx, []string{"check"}); err == nil {
		t.Error("check on an invalid store should fail")
	}
}

func TestConfigCommand(t *testing.T) {
	isolate(t)
	if err := Run(context.Background(), []string{"config"}); err != nil {
		t.Errorf("config failed: %v", err)
	}
	if err := Run(context.Background(), []string{"config", "-example"}); err != nil {
		t.Errorf("config -example failed: %v", err)
	}
}
