// Package add provides the runner logic for creating tasks.
package add

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

type Add struct {
	Title        string
	Due          time.Time
	CategoryName string
	ShowID       bool

	Tasks      *tasks.Store
	Categories *categories.Store
}

// Do creates the task and prints the resulting active list. A named category
// that does not exist yet is created on the fly.
func (n *Add) Do(ctx context.Context) error {
	if n.Tasks == nil || n.Categories == nil {
		return errors.New("can not add, no store")
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

	t, err := n.Tasks.Add(n.Title, n.Due, c)
	if err != nil {
		fmt.Printf("warning: %v\n", err)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.Title(t.Category.Name)
	pp.Tasks(time.Now(), query.Active(n.Tasks.List())...)

	return nil
}
