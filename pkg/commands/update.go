package commands

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/update"
)

func addUpdate(topLevel *cobra.Command) {
	no := &options.AddOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Edit a task in place",
		Example: `
agenda update --id <task id> new title here --due 2026-03-01 --category Work
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			no.Title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			var due time.Time
			if no.DueString != "" {
				var err error
				due, err = no.GetDue(time.Now())
				if err != nil {
					return err
				}
			}
			ts, cs, err := loadStores()
			if err != nil {
				return err
			}

			s := update.Update{
				ID:           io.ID,
				Title:        no.Title,
				Due:          due,
				CategoryName: no.Category,
				Tasks:        ts,
				Categories:   cs,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddIDArgs(cmd, io)
	options.AddDueArgs(cmd, no)
	options.AddCategoryArgs(cmd, no)
	_ = cmd.MarkFlagRequired("id")

	topLevel.AddCommand(cmd)
}
