package task

import (
	"fmt"
	"sort"
)

// SortKey selects the field SortBy orders tasks on.
type SortKey string

const (
	SortByDueDate  SortKey = "due_date"
	SortByPriority SortKey = "priority"
	SortByCategory SortKey = "category"
)

// SortKeys lists the recognized sort keys.
func SortKeys() []SortKey {
	return []SortKey{SortByDueDate, SortByPriority, SortByCategory}
}

// priorityRank orders priorities most urgent first. Unknown priorities
// rank after the known ones.
func priorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// SortBy returns a sorted copy of tasks ordered by the given key. The
// sort is stable; the input is never mutated. An unrecognized key is a
// hard error wrapping ErrInvalidSortKey.
//
// Keys: due_date (earliest first, no-date tasks last), priority (High
// before Medium before Low), category (natural string order).
func SortBy(tasks []Task, key SortKey) ([]Task, error) {
	var less func(a, b Task) bool

	switch key {
	case SortByDueDate:
		less = func(a, b Task) bool {
			if a.DueDate.IsZero() || b.DueDate.IsZero() {
				return !a.DueDate.IsZero() && b.DueDate.IsZero()
			}
			return a.DueDate.Before(b.DueDate)
		}
	case SortByPriority:
		less = func(a, b Task) bool {
			return priorityRank(a.Priority) < priorityRank(b.Priority)
		}
	case SortByCategory:
		less = func(a, b Task) bool {
			return a.Category < b.Category
		}
	default:
		return nil, fmt.Errorf("sort key %q: %w", key, ErrInvalidSortKey)
	}

	sorted := make([]Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	return sorted, nil
}
