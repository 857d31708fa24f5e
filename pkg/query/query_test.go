package query

import (
	"testing"
	"time"

	"tableflip.dev/agenda/pkg/category"
	"tableflip.dev/agenda/pkg/task"
)

func mk(title string, due time.Time, completed bool) task.Task {
	t := task.New(title, due, category.Category{ID: "c1", Name: "Work"})
	t.Completed = completed
	return *t
}

func TestActiveCompletedSplit(t *testing.T) {
	now := time.Now()
	all := []task.Task{
		mk("a", now, false),
		mk("b", now, true),
		mk("c", now, false),
	}

	active := Active(all)
	if len(active) != 2 {
		t.Fatalf("expected 2 active, got %d", len(active))
	}
	done := Completed(all)
	if len(done) != 1 || done[0].Title != "b" {
		t.Fatalf("unexpected completed set: %+v", done)
	}
}

func TestQueriesDoNotMutateInput(t *testing.T) {
	now := time.Now()
	all := []task.Task{mk("a", now, false), mk("b", now, true)}
	before := make([]task.Task, len(all))
	copy(before, all)

	Active(all)
	Completed(all)
	GroupByDueDay(all)

	for i := range all {
		if all[i] != before[i] {
			t.Fatalf("input snapshot mutated at %d", i)
		}
	}
}

func TestGroupByDueDaySameDay(t *testing.T) {
	morning := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.Local)
	evening := time.Date(2024, time.January, 1, 18, 0, 0, 0, time.Local)
	nextDay := time.Date(2024, time.January, 2, 0, 1, 0, 0, time.Local)

	groups := GroupByDueDay([]task.Task{
		mk("early", morning, false),
		mk("late", evening, false),
		mk("tomorrow", nextDay, false),
	})

	if len(groups) != 2 {
		t.Fatalf("expected 2 day groups, got %d", len(groups))
	}
	if len(groups[0].Tasks) != 2 {
		t.Fatalf("expected both January 1 tasks in one group, got %d", len(groups[0].Tasks))
	}
	if len(groups[1].Tasks) != 1 || groups[1].Tasks[0].Title != "tomorrow" {
		t.Fatalf("unexpected second group: %+v", groups[1])
	}
}

func TestGroupByDueDayOrdersAcrossMonths(t *testing.T) {
	feb := time.Date(2024, time.February, 1, 10, 0, 0, 0, time.Local)
	jan := time.Date(2024, time.January, 5, 10, 0, 0, 0, time.Local)

	groups := GroupByDueDay([]task.Task{
		mk("february", feb, false),
		mk("january", jan, false),
	})

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	// "Feb 1, 2024" sorts before "Jan 5, 2024" lexicographically; ordering
	// must follow the calendar instead.
	if groups[0].Tasks[0].Title != "january" {
		t.Fatalf("expected january group first, got %s", groups[0].Label)
	}
	if !groups[0].Day.Before(groups[1].Day) {
		t.Fatalf("groups out of calendar order")
	}
}

func TestGroupByDueDayLabels(t *testing.T) {
	due := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.Local)
	groups := GroupByDueDay([]task.Task{mk("a", due, false)})
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if groups[0].Label != "Jan 1, 2024" {
		t.Fatalf("unexpected label: %s", groups[0].Label)
	}
}

func TestOverdueAndDueSoonFilters(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	all := []task.Task{
		mk("past", now.Add(-time.Minute), false),
		mk("soon", now.Add(30*time.Minute), false),
		mk("later", now.Add(3*time.Hour), false),
		mk("done", now.Add(-time.Hour), true),
	}

	over := Overdue(all, now)
	if len(over) != 1 || over[0].Title != "past" {
		t.Fatalf("unexpected overdue set: %+v", over)
	}
	soon := DueSoon(all, now)
	if len(soon) != 1 || soon[0].Title != "soon" {
		t.Fatalf("unexpected due-soon set: %+v", soon)
	}
}
