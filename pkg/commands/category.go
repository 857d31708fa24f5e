package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/categories"
)

func addCategory(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"categories", "cat"},
		Short:   "Manage task categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addCategoryList(cmd, io)
	addCategoryAdd(cmd, io)

	topLevel.AddCommand(cmd)
}

func addCategoryList(topLevel *cobra.Command, io *options.IDOptions) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Example: `
agenda category list
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, cs, err := loadStores()
			if err != nil {
				return err
			}
			s := categories.List{
				ShowID:     io.ShowID,
				Categories: cs,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}

func addCategoryAdd(topLevel *cobra.Command, io *options.IDOptions) {
	name := ""

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a category",
		Example: `
agenda category add Health
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a category name")
			}
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			_, cs, err := loadStores()
			if err != nil {
				return err
			}
			s := categories.Add{
				Name:       name,
				ShowID:     io.ShowID,
				Categories: cs,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
