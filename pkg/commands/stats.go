package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/runner/stats"
	"tableflip.dev/moodlog/pkg/store"
)

func addStats(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "show mood statistics",
		Example: `
moodlog stats
moodlog stats --window week
moodlog stats --window all
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			w, err := wo.GetWindow()
			if err != nil {
				return err
			}
			s := stats.Stats{
				Window:      w,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddWindowArgs(cmd, wo)
	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
