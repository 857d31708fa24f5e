// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// FilterOptions captures list filtering flags for the get command.
type FilterOptions struct {
	Completed bool
	Overdue   bool
	DueSoon   bool
	ByDay     bool
}

// AddFilterArgs wires list filtering flags on the provided command.
func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().BoolVar(&o.Completed, "completed", false,
		"Show completed tasks instead of active ones.")
	cmd.Flags().BoolVar(&o.Overdue, "overdue", false,
		"Only show tasks past their due date.")
	cmd.Flags().BoolVar(&o.DueSoon, "due-soon", false,
		"Only show tasks coming due within the hour.")
	cmd.Flags().BoolVar(&o.ByDay, "by-day", false,
		"Group tasks by the calendar day they are due.")
}
