// Package complete provides the runner logic for toggling task completion.
package complete

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/query"
	"tableflip.dev/agenda/pkg/tasks"
)

// Complete flips the completion state of a task.
type Complete struct {
	ID string

	Tasks *tasks.Store
}

// Do toggles the configured task id and prints the active list. An unknown
// id is a silent no-op, matching the store.
func (n *Complete) Do(ctx context.Context) error {
	if n.Tasks == nil {
		return errors.New("can not complete, no task store")
	}

	if err := n.Tasks.ToggleCompletion(n.ID); err != nil {
		fmt.Printf("warning: %v\n", err)
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Title("active")
	pp.Tasks(time.Now(), query.Active(n.Tasks.List())...)

	return nil
}
