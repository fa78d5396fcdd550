package task

import (
	"errors"
	"testing"
)

func TestSortByDueDate(t *testing.T) {
	tasks := []Task{
		{ID: 1, DueDate: mustDate(t, "2024-08-05")},
		{ID: 2, DueDate: mustDate(t, "2024-08-01")},
		{ID: 3, DueDate: mustDate(t, "2024-08-10")},
	}

	got, err := SortBy(tasks, SortByDueDate)
	if err != nil {
		t.Fatalf("SortBy failed: %v", err)
	}
	if !equalIDs(ids(got), []int{2, 1, 3}) {
		t.Errorf("got ids %v, want [2 1 3]", ids(got))
	}
}

func TestSortByDueDateNoDateLast(t *testing.T) {
	tasks := []Task{
		{ID: 1},
		{ID: 2, DueDate: mustDate(t, "2024-08-01")},
		{ID: 3},
	}

	got, err := SortBy(tasks, SortByDueDate)
	if err != nil {
		t.Fatalf("SortBy failed: %v", err)
	}
	if !equalIDs(ids(got), []int{2, 1, 3}) {
		t.Errorf("got ids %v, want [2 1 3] (no-date tasks last, stable)", ids(got))
	}
}

func TestSortByPriority(t *testing.T) {
	tasks := []Task{
		{ID: 1, Priority: PriorityLow},
		{ID: 2, Priority: PriorityHigh},
		{ID: 3, Priority: PriorityMedium},
		{ID: 4, Priority: PriorityHigh},
	}

	got, err := SortBy(tasks, SortByPriority)
	if err != nil {
		t.Fatalf("SortBy failed: %v", err)
	}
	if !equalIDs(ids(got), []int{2, 4, 3, 1}) {
		t.Errorf("got ids %v, want [2 4 3 1] (High first, stable ties)", ids(got))
	}
}

func TestSortByCategory(t *testing.T) {
	tasks := []Task{
		{ID: 1, Category: CategoryWork},
		{ID: 2, Category: CategoryOther},
		{ID: 3, Category: CategoryPersonal},
	}

	got, err := SortBy(tasks, SortByCategory)
	if err != nil {
		t.Fatalf("SortBy failed: %v", err)
	}
	if !equalIDs(ids(got), []int{2, 3, 1}) {
		t.Errorf("got ids %v, want [2 3 1] (natural string order)", ids(got))
	}
}

func TestSortByInvalidKey(t *testing.T) {
	_, err := SortBy([]Task{{ID: 1}}, SortKey("title"))
	if err == nil {
		t.Fatal("expected error for unknown sort key, got nil")
	}
	if !errors.Is(err, ErrInvalidSortKey) {
		t.Errorf("expected ErrInvalidSortKey, got %v", err)
	}
}

func TestSortByEmptyInput(t *testing.T) {
	got, err := SortBy(nil, SortByDueDate)
	if err != nil {
		t.Fatalf("SortBy failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d tasks, want 0", len(got))
	}
}

func TestSortByDoesNotMutateInput(t *testing.T) {
	tasks := []Task{
		{ID: 1, Priority: PriorityLow},
		{ID: 2, Priority: PriorityHigh},
	}

	if _, err := SortBy(tasks, SortByPriority); err != nil {
		t.Fatalf("SortBy failed: %v", err)
	}
	if !equalIDs(ids(tasks), []int{1, 2}) {
		t.Errorf("input mutated: got ids %v", ids(tasks))
	}
}
