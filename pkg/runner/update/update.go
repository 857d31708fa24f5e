// Package update provides the runner logic for editing tasks in place.
package update

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/agenda/pkg/categories"
	"tableflip.dev/agenda/pkg/category"
	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/query"
	"tableflip.dev/agenda/pkg/tasks"
)

// Update rewrites title, due date, and category of an existing task. The id
// and completion state are preserved.
type Update struct {
	ID           string
	Title        string
	Due          time.Time
	CategoryName string

	Tasks      *tasks.Store
	Categories *categories.Store
}

func (n *Update) Do(ctx context.Context) error {
	if n.Tasks == nil || n.Categories == nil {
		return errors.New("can not update, no store")
	}

	current, ok := n.Tasks.Get(n.ID)
	if !ok {
		// Unknown ids are a no-op; keep parity with store semantics but
		// tell the user nothing matched.
		fmt.Printf("no task with id %s\n", n.ID)
		return nil
	}

	title := n.Title
	if title == "" {
		title = current.Title
	}
	due := n.Due
	if due.IsZero() {
		due = current.Due.Time
	}

	var c category.Category
	if n.CategoryName != "" {
		found, ok := n.Categories.Find(n.CategoryName)
		if !ok {
			var err error
			found, err = n.Categories.Add(n.CategoryName)
			if err != nil {
				return err
			}
		}
		c = found
	}

	if err := n.Tasks.Update(n.ID, title, due, c); err != nil {
		fmt.Printf("warning: %v\n", err)
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Title("active")
	pp.Tasks(time.Now(), query.Active(n.Tasks.List())...)

	return nil
}
