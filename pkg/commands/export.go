package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/runner/export"
	"tableflip.dev/moodlog/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	outfile := ""

	cmd := &cobra.Command{
		Use:   "export",
		Short: "export the journal as CSV",
		Example: `
moodlog export
moodlog export --file mood-journal.csv
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := export.Export{
				Output:      outfile,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&outfile, "file", "f", "",
		"Write CSV to this file instead of stdout.")
	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
