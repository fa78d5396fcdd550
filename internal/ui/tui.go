// Package ui provides the interactive terminal interface.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/task"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	doneStyle    = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	cursorStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle  = lipgloss.NewStyle().Faint(true)
)

// Run starts the TUI over the configured task file.
func Run(ctx context.Context, cfg *config.Config, logger *log.Logger) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	m := newModel(cfg, logger)
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type model struct {
	cfg    *config.Config
	logger *log.Logger

	tasks   []task.Task
	visible []task.Task
	cursor  int

	filterPriority task.Priority // "" = off
	filterCategory task.Category // "" = off
	showCompleted  bool
	sortKey        task.SortKey

	status   string
	showHelp bool
}

func newModel(cfg *config.Config, logger *log.Logger) *model {
	return &model{
		cfg:           cfg,
		logger:        logger,
		showCompleted: cfg.ShowCompleted,
		sortKey:       task.SortKey(cfg.Sort),
	}
}

func (m *model) Init() tea.Cmd {
	m.refresh()
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "h", "?":
		m.showHelp = !m.showHelp
	case "r", "f5":
		m.refresh()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case "p":
		m.filterPriority = nextPriority(m.filterPriority)
		m.applyView()
	case "c":
		m.filterCategory = nextCategory(m.filterCategory)
		m.applyView()
	case "a":
		m.showCompleted = !m.showCompleted
		m.applyView()
	case "s":
		m.sortKey = nextSortKey(m.sortKey)
		m.applyView()
	case " ", "space", "enter":
		m.toggleSelected()
	case "d":
		m.deleteSelected()
	}

	return m, nil
}

func nextPriority(p task.Priority) task.Priority {
	order := append([]task.Priority{""}, task.Priorities()...)
	for i, cur := range order {
		if cur == p {
			return order[(i+1)%len(order)]
		}
	}
	return ""
}

func nextCategory(c task.Category) task.Category {
	order := append([]task.Category{""}, task.Categories()...)
	for i, cur := range order {
		if cur == c {
			return order[(i+1)%len(order)]
		}
	}
	return ""
}

func nextSortKey(k task.SortKey) task.SortKey {
	keys := task.SortKeys()
	for i, cur := range keys {
		if cur == k {
			return keys[(i+1)%len(keys)]
		}
	}
	return keys[0]
}

// refresh reloads the store from disk and recomputes the view.
func (m *model) refresh() {
	result, err := task.Load(m.cfg.TasksFile)
	if err != nil {
		m.status = err.Error()
		return
	}
	for _, issue := range result.Issues {
		m.logger.Warn(issue)
	}
	if result.Recovered {
		m.status = "task file was corrupted; starting from an empty list"
	}
	m.tasks = result.Tasks
	m.applyView()
}

// applyView recomputes the visible slice from filters and sort.
func (m *model) applyView() {
	visible := m.tasks
	if m.filterPriority != "" {
		visible = task.FilterByPriority(visible, m.filterPriority)
	}
	if m.filterCategory != "" {
		visible = task.FilterByCategory(visible, m.filterCategory)
	}
	if !m.showCompleted {
		visible = task.FilterByCompletion(visible, false)
	}

	sorted, err := task.SortBy(visible, m.sortKey)
	if err != nil {
		// Unknown key can only come from config; fall back rather than die.
		m.sortKey = task.SortByDueDate
		sorted, _ = task.SortBy(visible, m.sortKey)
	}
	m.visible = sorted

	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *model) toggleSelected() {
	if m.cursor >= len(m.visible) {
		return
	}
	id := m.visible[m.cursor].ID
	if err := task.Toggle(m.tasks, id); err != nil {
		m.status = err.Error()
		return
	}
	if err := task.Save(m.tasks, m.cfg.TasksFile); err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("toggled task %d", id)
	m.applyView()
}

func (m *model) deleteSelected() {
	if m.cursor >= len(m.visible) {
		return
	}
	id := m.visible[m.cursor].ID
	remaining, err := task.Remove(m.tasks, id)
	if err != nil {
		m.status = err.Error()
		return
	}
	if err := task.Save(remaining, m.cfg.TasksFile); err != nil {
		m.status = err.Error()
		return
	}
	m.tasks = remaining
	m.status = fmt.Sprintf("deleted task %d", id)
	m.applyView()
}

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("taskdeck") + "\n\n")

	if m.showHelp {
		writeHelp(&b)
		return b.String()
	}

	writeFilterLine(&b, m)

	if len(m.visible) == 0 {
		b.WriteString("  No tasks match.\n")
	}
	today := task.Today()
	for i, t := range m.visible {
		b.WriteString(renderRow(t, i == m.cursor, today) + "\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status) + "\n")
	}
	b.WriteString(statusStyle.Render("space toggle | d delete | p/c/a filters | s sort | h help | q quit") + "\n")
	return b.String()
}

func writeFilterLine(b *strings.Builder, m *model) {
	parts := []string{"sort: " + string(m.sortKey)}
	if m.filterPriority != "" {
		parts = append(parts, "priority: "+string(m.filterPriority))
	}
	if m.filterCategory != "" {
		parts = append(parts, "category: "+string(m.filterCategory))
	}
	if m.showCompleted {
		parts = append(parts, "showing completed")
	}
	b.WriteString(statusStyle.Render(strings.Join(parts, " | ")) + "\n\n")
}

func renderRow(t task.Task, selected bool, today task.Date) string {
	mark := "[ ]"
	if t.Completed {
		mark = "[x]"
	}

	due := t.DueDate.String()
	if due == "" {
		due = "no date"
	}

	line := fmt.Sprintf("%s %3d  %-30s %-6s %-8s %s", mark, t.ID, truncate(t.Title, 30), t.Priority, t.Category, due)
	switch {
	case t.Completed:
		line = doneStyle.Render(line)
	case !t.DueDate.IsZero() && t.DueDate.Before(today):
		line = overdueStyle.Render(line)
	}

	prefix := "  "
	if selected {
		prefix = cursorStyle.Render("> ")
	}
	return prefix + line
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  q, ctrl+c    Quit\n")
	b.WriteString("  r, F5        Reload the task file\n")
	b.WriteString("  up/down, j/k Move the cursor\n")
	b.WriteString("  space, enter Toggle completion of the selected task\n")
	b.WriteString("  d            Delete the selected task\n")
	b.WriteString("  p            Cycle the priority filter\n")
	b.WriteString("  c            Cycle the category filter\n")
	b.WriteString("  a            Toggle showing completed tasks\n")
	b.WriteString("  s            Cycle the sort key\n")
	b.WriteString("  h, ?         Toggle this help screen\n")
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, _ := f.Stat()
	return (info.Mode() & os.ModeCharDevice) != 0
}
