package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/stats"
)

// WindowOptions scopes statistics to a trailing time range.
type WindowOptions struct {
	WindowString string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVarP(&o.WindowString, "window", "w", "month",
		"Time window: week, month, year, or all.")
}

func (o *WindowOptions) GetWindow() (stats.Window, error) {
	return stats.ParseWindow(o.WindowString)
}
