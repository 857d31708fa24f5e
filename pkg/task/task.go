// Package task defines the task entity and its derived due-date state.
package task

import (
	"time"

	"github.com/google/uuid"

	"tableflip.dev/agenda/pkg/category"
)

// DueSoonWindow is how far ahead of the due date a task counts as due soon.
const DueSoonWindow = time.Hour

// Task is a single tracked item.
//
// Category is a value copy taken when the category is assigned. Renaming a
// category in the category store later does not rewrite tasks holding the old
// snapshot; that detachment is deliberate, not an oversight.
type Task struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Due       Timestamp         `json:"dueDate"`
	Completed bool              `json:"isCompleted"`
	Category  category.Category `json:"type"`
}

// New mints a task with a fresh id and completion unset. Tasks created with a
// zero category get the synthesized placeholder so the category snapshot is
// never empty.
func New(title string, due time.Time, c category.Category) *Task {
	if c.ID == "" {
		c = category.Placeholder()
	}
	return &Task{
		ID:       uuid.NewString(),
		Title:    title,
		Due:      Timestamp{Time: due},
		Category: c,
	}
}

// Overdue reports whether the due date has passed as of now. Completed tasks
// are never overdue.
func (t *Task) Overdue(now time.Time) bool {
	if t.Completed {
		return false
	}
	return now.After(t.Due.Time)
}

// DueSoon reports whether the task comes due within DueSoonWindow of now.
// Completed and already-due tasks are excluded.
func (t *Task) DueSoon(now time.Time) bool {
	if t.Completed {
		return false
	}
	if !t.Due.Time.After(now) {
		return false
	}
	return t.Due.Time.Sub(now) < DueSoonWindow
}
