package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	no := &options.AddOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		Example: `
agenda add water the plants --due 2d --category Personal
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task title")
			}
			no.Title = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			due, err := no.GetDue(time.Now())
			if err != nil {
				return err
			}
			ts, cs, err := loadStores()
			if err != nil {
				return err
			}

			s := add.Add{
				Title:        no.Title,
				Due:          due,
				CategoryName: no.Category,
				ShowID:       io.ShowID,
				Tasks:        ts,
				Categories:   cs,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDueArgs(cmd, no)
	options.AddCategoryArgs(cmd, no)
	options.AddShowIDArgs(cmd, io)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
