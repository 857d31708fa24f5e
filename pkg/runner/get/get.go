// Package get provides the runner logic for listing tasks.
package get

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/query"
	"tableflip.dev/agenda/pkg/task"
	"tableflip.dev/agenda/pkg/tasks"
)

type Get struct {
	ShowID    bool
	Completed bool
	Overdue   bool
	DueSoon   bool
	ByDay     bool

	Tasks *tasks.Store
}

func (n *Get) Do(ctx context.Context) error {
	if n.Tasks == nil {
		return errors.New("can not get, no task store")
	}

	now := time.Now()
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	all := n.filtered(n.Tasks.List(), now)

	if n.ByDay {
		for _, g := range query.GroupByDueDay(all) {
			pp.Title(g.Label)
			pp.Tasks(now, g.Tasks...)
		}
		return nil
	}

	title := "active"
	if n.Completed {
		title = "completed"
	}
	pp.TitleWithCount(title, len(all))
	pp.Tasks(now, all...)

	return nil
}

func (n *Get) filtered(all []task.Task, now time.Time) []task.Task {
	if n.Completed {
		return query.Completed(all)
	}
	all = query.Active(all)
	switch {
	case n.Overdue:
		return query.Overdue(all, now)
	case n.DueSoon:
		return query.DueSoon(all, now)
	}
	return all
}
