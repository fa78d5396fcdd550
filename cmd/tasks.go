package cmd

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/log"

	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/task"
)

// loadStore loads the task file and logs any recovery diagnostics. The
// library collects them; reporting is the CLI's job.
func loadStore(cfg *config.Config, logger *log.Logger) ([]task.Task, error) {
	result, err := task.Load(cfg.TasksFile)
	if err != nil {
		return nil, err
	}
	for _, issue := range result.Issues {
		logger.Warn(issue)
	}
	return result.Tasks, nil
}

func parsePriority(s string) (task.Priority, error) {
	for _, p := range task.Priorities() {
		if strings.EqualFold(s, string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("invalid priority %q (want Low, Medium, or High)", s)
}

func parseCategory(s string) (task.Category, error) {
	for _, c := range task.Categories() {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid category %q (want Work, Personal, School, or Other)", s)
}

func parseRecurrence(s string) (task.Recurrence, error) {
	for _, r := range []task.Recurrence{task.RecurrenceNone, task.RecurrenceDaily, task.RecurrenceWeekly, task.RecurrenceMonthly} {
		if strings.EqualFold(s, string(r)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("invalid recurrence %q (want none, daily, weekly, or monthly)", s)
}

func parseTaskID(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected exactly one task id argument")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid task id %q", args[0])
	}
	return id, nil
}

// addCommand creates a task, expanding recurring tasks into multiple
// instances when -repeat is given.
func addCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("taskdeck add", flag.ContinueOnError)
	title := fs.String("title", "", "Task title (required)")
	desc := fs.String("desc", "", "Task description")
	priority := fs.String("priority", string(task.PriorityMedium), "Priority (Low|Medium|High)")
	category := fs.String("category", string(task.CategoryOther), "Category (Work|Personal|School|Other)")
	due := fs.String("due", "", "Due date, ISO format (required, e.g. 2024-08-01)")
	recur := fs.String("recur", string(task.RecurrenceNone), "Recurrence (none|daily|weekly|monthly)")
	repeat := fs.Int("repeat", 1, "Number of recurring instances to create")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if strings.TrimSpace(*title) == "" {
		return fmt.Errorf("a non-empty -title is required")
	}
	p, err := parsePriority(*priority)
	if err != nil {
		return err
	}
	c, err := parseCategory(*category)
	if err != nil {
		return err
	}
	r, err := parseRecurrence(*recur)
	if err != nil {
		return err
	}
	if *due == "" {
		return fmt.Errorf("a -due date is required")
	}
	dueDate, err := task.ParseDate(*due)
	if err != nil {
		return err
	}
	if *repeat < 1 {
		return fmt.Errorf("-repeat must be at least 1")
	}
	if *repeat > 1 && r == task.RecurrenceNone {
		return fmt.Errorf("-repeat needs a -recur policy")
	}

	tasks, err := loadStore(cfg, logger)
	if err != nil {
		return err
	}

	template := task.Task{
		Title:       *title,
		Description: *desc,
		Priority:    p,
		Category:    c,
		DueDate:     dueDate,
		Recurrence:  r,
	}

	if *repeat > 1 {
		instances := task.Recur(template, *repeat, tasks)
		tasks = append(tasks, instances...)
		if err := task.Save(tasks, cfg.TasksFile); err != nil {
			return err
		}
		logger.Info("added recurring task",
			"title", template.Title, "instances", len(instances), "first_due", instances[0].DueDate.String())
		return nil
	}

	tasks, added := task.Add(tasks, template)
	if err := task.Save(tasks, cfg.TasksFile); err != nil {
		return err
	}
	logger.Info("added task", "id", added.ID, "title", added.Title, "due", added.DueDate.String())
	return nil
}

// listCommand prints tasks after applying filters and sorting.
func listCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("taskdeck list", flag.ContinueOnError)
	priority := fs.String("priority", "", "Only tasks with this priority")
	category := fs.String("category", "", "Only tasks in this category")
	search := fs.String("search", "", "Only tasks matching this text in title or description")
	overdue := fs.Bool("overdue", false, "Only incomplete tasks past their due date")
	completedOnly := fs.Bool("completed", false, "Only completed tasks")
	all := fs.Bool("all", cfg.ShowCompleted, "Include completed tasks")
	sortKey := fs.String("sort", cfg.Sort, "Sort key (due_date|priority|category)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tasks, err := loadStore(cfg, logger)
	if err != nil {
		return err
	}

	if *priority != "" {
		p, err := parsePriority(*priority)
		if err != nil {
			return err
		}
		tasks = task.FilterByPriority(tasks, p)
	}
	if *category != "" {
		c, err := parseCategory(*category)
		if err != nil {
			return err
		}
		tasks = task.FilterByCategory(tasks, c)
	}
	if *search != "" {
		tasks = task.Search(tasks, *search)
	}
	if *overdue {
		tasks = task.Overdue(tasks, task.Today())
	}

	// The show-completed toggle is authoritative; completed tasks are
	// hidden only when it says so.
	if *completedOnly {
		tasks = task.FilterByCompletion(tasks, true)
	} else if !*all && !*overdue {
		tasks = task.FilterByCompletion(tasks, false)
	}

	tasks, err = task.SortBy(tasks, task.SortKey(*sortKey))
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks.")
		return nil
	}
	renderTable(tasks)
	return nil
}

func renderTable(tasks []task.Task) {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\t \tTITLE\tPRIORITY\tCATEGORY\tDUE\tRECUR")
	today := task.Today()
	for _, t := range tasks {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		due := t.DueDate.String()
		if due == "" {
			due = "-"
		} else if !t.Completed && t.DueDate.Before(today) {
			due += " !"
		}
		recur := string(t.Recurrence)
		if recur == "" || recur == string(task.RecurrenceNone) {
			recur = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, mark, t.Title, t.Priority, t.Category, due, recur)
	}
	w.Flush()
}

// doneCommand toggles a task's completion flag.
func doneCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	id, err := parseTaskID(args)
	if err != nil {
		return err
	}

	tasks, err := loadStore(cfg, logger)
	if err != nil {
		return err
	}
	if err := task.Toggle(tasks, id); err != nil {
		return err
	}
	if err := task.Save(tasks, cfg.TasksFile); err != nil {
		return err
	}

	t := task.Find(tasks, id)
	state := "pending"
	if t.Completed {
		state = "completed"
	}
	logger.Info("toggled task", "id", id, "state", state)
	return nil
}

// editCommand applies a partial update; only flags the user actually
// set are merged into the stored task.
func editCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("expected a task id argument")
	}
	id, err := parseTaskID(args[:1])
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("taskdeck edit", flag.ContinueOnError)
	title := fs.String("title", "", "New title")
	desc := fs.String("desc", "", "New description")
	priority := fs.String("priority", "", "New priority (Low|Medium|High)")
	category := fs.String("category", "", "New category (Work|Personal|School|Other)")
	due := fs.String("due", "", "New due date, ISO format")
	recur := fs.String("recur", "", "New recurrence (none|daily|weekly|monthly)")
	completed := fs.Bool("completed", false, "New completion state")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	var update task.TaskUpdate
	var parseErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			update.Title = title
		case "desc":
			update.Description = desc
		case "priority":
			p, err := parsePriority(*priority)
			if err != nil {
				parseErr = err
				return
			}
			update.Priority = &p
		case "category":
			c, err := parseCategory(*category)
			if err != nil {
				parseErr = err
				return
			}
			update.Category = &c
		case "due":
			d, err := task.ParseDate(*due)
			if err != nil {
				parseErr = err
				return
			}
			update.DueDate = &d
		case "recur":
			r, err := parseRecurrence(*recur)
			if err != nil {
				parseErr = err
				return
			}
			update.Recurrence = &r
		case "completed":
			update.Completed = completed
		}
	})
	if parseErr != nil {
		return parseErr
	}
	if update == (task.TaskUpdate{}) {
		return fmt.Errorf("nothing to edit; pass at least one field flag")
	}

	if err := task.Edit(cfg.TasksFile, id, update); err != nil {
		return err
	}
	logger.Info("edited task", "id", id)
	return nil
}

// rmCommand deletes a task.
func rmCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	id, err := parseTaskID(args)
	if err != nil {
		return err
	}

	tasks, err := loadStore(cfg, logger)
	if err != nil {
		return err
	}
	tasks, err = task.Remove(tasks, id)
	if err != nil {
		return err
	}
	if err := task.Save(tasks, cfg.TasksFile); err != nil {
		return err
	}
	logger.Info("removed task", "id", id)
	return nil
}
