package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/runner/calendar"
	"tableflip.dev/moodlog/pkg/store"
)

func addCalendar(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	fo := &options.FilterOptions{}

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "show the month grid",
		Example: `
moodlog calendar
moodlog calendar --on="2025-2-1"
moodlog calendar --mood good
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			label, err := fo.GetLabel()
			if err != nil {
				return err
			}
			s := calendar.Calendar{
				On:          on,
				MoodLabel:   label,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddFilterArgs(cmd, fo)
	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
