package task

import "strings"

// FilterByPriority returns the tasks whose priority equals p, in input
// order. An unknown or missing priority on a record never matches.
func FilterByPriority(tasks []Task, p Priority) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Priority == p {
			out = append(out, t)
		}
	}
	return out
}

// FilterByCategory returns the tasks whose category equals c, in input
// order.
func FilterByCategory(tasks []Task, c Category) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Category == c {
			out = append(out, t)
		}
	}
	return out
}

// FilterByCompletion returns the tasks whose completed flag equals
// completed, in input order.
func FilterByCompletion(tasks []Task, completed bool) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Completed == completed {
			out = append(out, t)
		}
	}
	return out
}

// Search returns the tasks whose title or description contains query,
// case-insensitively. An empty query matches everything.
func Search(tasks []Task, query string) []Task {
	query = strings.ToLower(query)
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), query) ||
			strings.Contains(strings.ToLower(t.Description), query) {
			out = append(out, t)
		}
	}
	return out
}

// Overdue returns the incomplete tasks whose due date is strictly
// before today. Tasks without a due date are never overdue.
func Overdue(tasks []Task, today Date) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Completed || t.DueDate.IsZero() {
			continue
		}
		if t.DueDate.Before(today) {
			out = append(out, t)
		}
	}
	return out
}
