// Package query derives presentation views from task store snapshots. All
// functions are pure; they never mutate their input.
package query

import (
	"sort"
	"time"

	"tableflip.dev/agenda/pkg/task"
)

// DayLabelLayout is the medium-style label used for day group headings.
const DayLabelLayout = "Jan 2, 2006"

// Active returns the tasks not yet completed.
func Active(tasks []task.Task) []task.Task {
	out := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}

// Completed returns the tasks already completed.
func Completed(tasks []task.Task) []task.Task {
	out := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Completed {
			out = append(out, t)
		}
	}
	return out
}

// Overdue returns the active tasks whose due date has passed as of now.
func Overdue(tasks []task.Task, now time.Time) []task.Task {
	out := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Overdue(now) {
			out = append(out, t)
		}
	}
	return out
}

// DueSoon returns the active tasks coming due within the due-soon window.
func DueSoon(tasks []task.Task, now time.Time) []task.Task {
	out := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.DueSoon(now) {
			out = append(out, t)
		}
	}
	return out
}

// DayGroup is one calendar day of tasks. Label is the human heading; Day is
// midnight local time of that calendar day.
type DayGroup struct {
	Label string
	Day   time.Time
	Tasks []task.Task
}

// GroupByDueDay buckets tasks by the local calendar day of their due date,
// ignoring time of day. Groups come back ordered by the day value itself,
// not by label text, so ordering holds across month and year boundaries.
// Order within a group follows the input.
func GroupByDueDay(tasks []task.Task) []DayGroup {
	buckets := make(map[time.Time]*DayGroup)
	for _, t := range tasks {
		y, m, d := t.Due.Local().Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
		g, ok := buckets[day]
		if !ok {
			g = &DayGroup{Label: day.Format(DayLabelLayout), Day: day}
			buckets[day] = g
		}
		g.Tasks = append(g.Tasks, t)
	}

	groups := make([]DayGroup, 0, len(buckets))
	for _, g := range buckets {
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Day.Before(groups[j].Day)
	})
	return groups
}
