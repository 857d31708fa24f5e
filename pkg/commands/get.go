package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"list", "ls"},
		Short:   "List tasks",
		Example: `
agenda get
agenda get --completed
agenda get --by-day
agenda get --overdue --show-id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, _, err := loadStores()
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:    io.ShowID,
				Completed: fo.Completed,
				Overdue:   fo.Overdue,
				DueSoon:   fo.DueSoon,
				ByDay:     fo.ByDay,
				Tasks:     ts,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
