package task

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// record is the on-disk form of a Task. Dates travel as strings so the
// file stays readable and tolerant of hand edits.
type record struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    Priority   `json:"priority"`
	Category    Category   `json:"category"`
	DueDate     string     `json:"due_date"`
	Completed   bool       `json:"completed"`
	CreatedAt   string     `json:"created_at,omitempty"`
	Recurrence  Recurrence `json:"recurrence,omitempty"`
}

// LoadResult is what Load hands back: the tasks plus a record of any
// recovery that happened along the way. Malformed input is defaulted,
// never fatal, so the caller can keep the UI usable and still report
// what was wrong.
type LoadResult struct {
	Tasks []Task
	// Recovered is true when the whole file was unusable and the store
	// was defaulted to empty.
	Recovered bool
	// Issues holds one human-readable diagnostic per recovery.
	Issues []string
}

// Load reads the task store at path.
//
// A missing file yields an empty store with no error. A file with
// invalid JSON yields an empty store with Recovered set. A record with
// an unparseable due date keeps loading with the no-date marker
// substituted. Only unexpected I/O failures return an error.
func Load(path string) (*LoadResult, error) {
	result := &LoadResult{Tasks: []Task{}}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return result, nil
		}
		return nil, fmt.Errorf("read task file: %w", err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		result.Recovered = true
		result.Issues = append(result.Issues,
			fmt.Sprintf("%s contains invalid JSON, starting with an empty task list: %v", path, err))
		return result, nil
	}

	for _, rec := range records {
		result.Tasks = append(result.Tasks, rec.toTask(result))
	}

	return result, nil
}

// toTask converts an on-disk record to a Task, recording recoveries on
// result.
func (rec record) toTask(result *LoadResult) Task {
	t := Task{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		Priority:    rec.Priority,
		Category:    rec.Category,
		Completed:   rec.Completed,
		Recurrence:  rec.Recurrence,
	}

	if rec.DueDate != "" {
		due, err := ParseDate(rec.DueDate)
		if err != nil {
			result.Issues = append(result.Issues,
				fmt.Sprintf("task %d: invalid due_date %q, treating as no date", rec.ID, rec.DueDate))
		}
		t.DueDate = due
	}

	if rec.CreatedAt != "" {
		created, err := time.ParseInLocation(createdAtLayout, rec.CreatedAt, time.Local)
		if err != nil {
			result.Issues = append(result.Issues,
				fmt.Sprintf("task %d: invalid created_at %q, treating as unset", rec.ID, rec.CreatedAt))
		} else {
			t.CreatedAt = created
		}
	}

	return t
}

// toRecord converts a Task to its on-disk form.
func toRecord(t Task) record {
	rec := record{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Category:    t.Category,
		DueDate:     t.DueDate.String(),
		Completed:   t.Completed,
		Recurrence:  t.Recurrence,
	}
	if !t.CreatedAt.IsZero() {
		rec.CreatedAt = t.CreatedAt.Format(createdAtLayout)
	}
	return rec
}

// Save writes the task store to path as a JSON array with 2-space
// indentation and a trailing newline. The input slice is not mutated;
// date conversion happens on copies. Whole-file overwrite is the only
// durability guarantee.
func Save(tasks []Task, path string) error {
	records := make([]record, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, toRecord(t))
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal task file: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write task file: %w", err)
	}

	return nil
}

// NextID returns the next unique task ID: 1 for an empty store,
// otherwise max(id)+1. Callers serialize access; there is no internal
// locking.
func NextID(tasks []Task) int {
	max := 0
	for _, t := range tasks {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}

// Add assigns t a fresh ID and creation time and appends it to tasks.
// It returns the extended slice and the stored task.
func Add(tasks []Task, t Task) ([]Task, Task) {
	t.ID = NextID(tasks)
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	return append(tasks, t), t
}

// Find returns a pointer to the task with the given ID, or nil.
func Find(tasks []Task, id int) *Task {
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i]
		}
	}
	return nil
}

// Edit loads the store at path, merges the update into the task with
// the given ID, and writes the whole store back. A missing ID is a
// hard error wrapping ErrTaskNotFound.
func Edit(path string, id int, update TaskUpdate) error {
	result, err := Load(path)
	if err != nil {
		return err
	}

	t := Find(result.Tasks, id)
	if t == nil {
		return fmt.Errorf("edit task %d: %w", id, ErrTaskNotFound)
	}
	update.Apply(t)

	return Save(result.Tasks, path)
}

// Toggle flips the completed flag of the task with the given ID in
// place, touching no other field. A missing ID is a hard error
// wrapping ErrTaskNotFound.
func Toggle(tasks []Task, id int) error {
	t := Find(tasks, id)
	if t == nil {
		return fmt.Errorf("toggle task %d: %w", id, ErrTaskNotFound)
	}
	t.Completed = !t.Completed
	return nil
}

// Remove returns tasks without the task with the given ID, preserving
// order. A missing ID is a hard error wrapping ErrTaskNotFound.
func Remove(tasks []Task, id int) ([]Task, error) {
	out := make([]Task, 0, len(tasks))
	found := false
	for _, t := range tasks {
		if t.ID == id {
			found = true
			continue
		}
		out = append(out, t)
	}
	if !found {
		return nil, fmt.Errorf("remove task %d: %w", id, ErrTaskNotFound)
	}
	return out, nil
}
