package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/agenda/pkg/categories"
	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/tasks"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: base.Wrap80("Personal task tracking on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addComplete(topLevel)
	addRemove(topLevel)
	addUpdate(topLevel)
	addCategory(topLevel)
	addVersion(topLevel)
}

// loadStores builds the persistence gateway and loads both stores. Store
// loads never fail: first run seeds defaults and corrupt storage degrades
// in place.
func loadStores() (*tasks.Store, *categories.Store, error) {
	g, err := store.Load(nil)
	if err != nil {
		return nil, nil, err
	}
	cs := categories.NewStore(g)
	cs.Load()
	ts := tasks.NewStore(g)
	ts.Load()
	return ts, cs, nil
}
