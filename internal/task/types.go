package task

import (
	"fmt"
	"time"
)

// Priority represents a task priority level.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Category represents a task category.
type Category string

const (
	CategoryWork     Category = "Work"
	CategoryPersonal Category = "Personal"
	CategorySchool   Category = "School"
	CategoryOther    Category = "Other"
)

// Recurrence represents a recurrence policy.
type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// Priorities lists all known priority levels, most urgent first.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// Categories lists all known categories.
func Categories() []Category {
	return []Category{CategoryWork, CategoryPersonal, CategorySchool, CategoryOther}
}

// dateLayout is the on-disk due date format (ISO 8601 calendar date).
const dateLayout = "2006-01-02"

// createdAtLayout is the on-disk created_at format.
const createdAtLayout = "2006-01-02 15:04:05"

// Date is a calendar date without a time component. The zero value is
// the explicit "no date" marker.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate returns the date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{year: year, month: month, day: day}
}

// DateOf truncates t to its calendar date.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// Today returns the current calendar date in local time.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses an ISO 8601 calendar date ("2006-01-02").
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// IsZero returns true if d is the "no date" marker.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Before returns true if d is strictly before other.
func (d Date) Before(other Date) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}

// AddDays returns the date n calendar days after d.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// Time returns the date at midnight local time.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.Local)
}

// String formats the date as ISO 8601, or "" for the no-date marker.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(dateLayout)
}

// Task represents a single to-do record.
type Task struct {
	ID          int
	Title       string
	Description string
	Priority    Priority
	Category    Category
	DueDate     Date
	Completed   bool
	CreatedAt   time.Time
	Recurrence  Recurrence
}

// IsZero returns true if the task is empty (has no ID).
func (t *Task) IsZero() bool {
	return t.ID == 0
}

// TaskUpdate holds a partial task edit. Nil fields are left untouched;
// non-nil fields fully replace the stored value.
type TaskUpdate struct {
	Title       *string
	Description *string
	Priority    *Priority
	Category    *Category
	DueDate     *Date
	Completed   *bool
	Recurrence  *Recurrence
}

// Apply merges the update into t. ID and CreatedAt are never touched.
func (u TaskUpdate) Apply(t *Task) {
	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Priority != nil {
		t.Priority = *u.Priority
	}
	if u.Category != nil {
		t.Category = *u.Category
	}
	if u.DueDate != nil {
		t.DueDate = *u.DueDate
	}
	if u.Completed != nil {
		t.Completed = *u.Completed
	}
	if u.Recurrence != nil {
		t.Recurrence = *u.Recurrence
	}
}
