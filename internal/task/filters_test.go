package task

import "testing"

func sampleTasks(t testing.TB) []Task {
	t.Helper()
	return []Task{
		{ID: 1, Title: "Write report", Description: "quarterly numbers", Priority: PriorityHigh, Category: CategoryWork, DueDate: mustDate(t, "2024-08-05")},
		{ID: 2, Title: "Buy groceries", Priority: PriorityMedium, Category: CategoryPersonal, DueDate: mustDate(t, "2024-08-01")},
		{ID: 3, Title: "Review PR", Description: "storage branch", Priority: PriorityHigh, Category: CategoryWork, DueDate: mustDate(t, "2024-08-10"), Completed: true},
		{ID: 4, Title: "Study for exam", Priority: PriorityLow, Category: CategorySchool},
	}
}

func ids(tasks []Task) []int {
	out := make([]int, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func equalIDs(a []int, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterByPriority(t *testing.T) {
	tests := []struct {
		name     string
		priority Priority
		want     []int
	}{
		{name: "high", priority: PriorityHigh, want: []int{1, 3}},
		{name: "medium", priority: PriorityMedium, want: []int{2}},
		{name: "low", priority: PriorityLow, want: []int{4}},
		{name: "unknown value matches nothing", priority: Priority("Urgent"), want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByPriority(sampleTasks(t), tt.priority)
			if !equalIDs(ids(got), tt.want) {
				t.Errorf("got ids %v, want %v", ids(got), tt.want)
			}
		})
	}
}

func TestFilterByPriorityPreservesOrder(t *testing.T) {
	tasks := []Task{
		{ID: 3, Priority: PriorityHigh},
		{ID: 1, Priority: PriorityHigh},
		{ID: 2, Priority: PriorityMedium},
	}
	got := FilterByPriority(tasks, PriorityHigh)
	if !equalIDs(ids(got), []int{3, 1}) {
		t.Errorf("input order not preserved: got %v", ids(got))
	}
}

func TestFilterByCategory(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		want     []int
	}{
		{name: "work", category: CategoryWork, want: []int{1, 3}},
		{name: "school", category: CategorySchool, want: []int{4}},
		{name: "no matches", category: CategoryOther, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByCategory(sampleTasks(t), tt.category)
			if !equalIDs(ids(got), tt.want) {
				t.Errorf("got ids %v, want %v", ids(got), tt.want)
			}
		})
	}
}

func TestFilterByCompletion(t *testing.T) {
	tasks := sampleTasks(t)

	done := FilterByCompletion(tasks, true)
	if !equalIDs(ids(done), []int{3}) {
		t.Errorf("completed: got ids %v, want [3]", ids(done))
	}

	pending := FilterByCompletion(tasks, false)
	if !equalIDs(ids(pending), []int{1, 2, 4}) {
		t.Errorf("pending: got ids %v, want [1 2 4]", ids(pending))
	}
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{name: "title match", query: "report", want: []int{1}},
		{name: "case insensitive", query: "REVIEW", want: []int{3}},
		{name: "description match", query: "storage", want: []int{3}},
		{name: "empty query matches everything", query: "", want: []int{1, 2, 3, 4}},
		{name: "no match", query: "zzz", want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(sampleTasks(t), tt.query)
			if !equalIDs(ids(got), tt.want) {
				t.Errorf("got ids %v, want %v", ids(got), tt.want)
			}
		})
	}
}

func TestOverdue(t *testing.T) {
	today := mustDate(t, "2024-08-06")
	tasks := []Task{
		{ID: 1, Title: "past due", DueDate: mustDate(t, "2024-08-05")},
		{ID: 2, Title: "due today", DueDate: mustDate(t, "2024-08-06")},
		{ID: 3, Title: "future", DueDate: mustDate(t, "2024-08-10")},
		{ID: 4, Title: "past but done", DueDate: mustDate(t, "2024-08-01"), Completed: true},
		{ID: 5, Title: "no due date"},
	}

	got := Overdue(tasks, today)
	if !equalIDs(ids(got), []int{1}) {
		t.Errorf("got ids %v, want [1]", ids(got))
	}
}
