package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "moodlog",
		Short: base.Wrap80("Mood journaling on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addKey(topLevel)
	addLog(topLevel)
	addToday(topLevel)
	addCalendar(topLevel)
	addStats(topLevel)
	addExport(topLevel)
	addVersion(topLevel)
}
