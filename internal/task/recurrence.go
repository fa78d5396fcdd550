package task

import "time"

// Recur expands a recurring task template into count sibling instances.
// The first instance keeps the template's due date and each subsequent
// one falls a single calendar day later regardless of the declared
// recurrence unit (see DESIGN.md before changing the step size).
//
// IDs are allocated against existing so they stay unique across the
// whole store, and each instance gets a fresh creation time. Every
// other field is copied verbatim from the template.
func Recur(template Task, count int, existing []Task) []Task {
	if count <= 0 {
		return []Task{}
	}

	base := NextID(existing)
	now := time.Now()

	instances := make([]Task, 0, count)
	for i := 0; i < count; i++ {
		instance := template
		instance.ID = base + i
		instance.CreatedAt = now
		if !template.DueDate.IsZero() {
			instance.DueDate = template.DueDate.AddDays(i)
		}
		instances = append(instances, instance)
	}
	return instances
}
