// Package remove provides the runner logic for deleting tasks.
package remove

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/query"
	"tableflip.dev/agenda/pkg/tasks"
)

// Remove deletes a task permanently.
type Remove struct {
	ID string

	Tasks *tasks.Store
}

// Do deletes the configured task id and prints the remaining active list.
// Deleting an id that is already gone is a no-op.
func (n *Remove) Do(ctx context.Context) error {
	if n.Tasks == nil {
		return errors.New("can not remove, no task store")
	}

	if err := n.Tasks.Delete(n.ID); err != nil {
		fmt.Printf("warning: %v\n", err)
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Title("active")
	pp.Tasks(time.Now(), query.Active(n.Tasks.List())...)

	return nil
}
