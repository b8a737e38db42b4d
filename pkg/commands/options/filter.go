package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/mood"
)

// FilterOptions narrows entry lists to one mood.
type FilterOptions struct {
	MoodString string
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.MoodString, "mood", "m", "",
		"Only list entries with this mood.")
}

// GetLabel resolves the filter to a catalog label, or "" for no filter.
func (o *FilterOptions) GetLabel() (string, error) {
	if o.MoodString == "" {
		return "", nil
	}
	m, err := mood.ForAlias(o.MoodString)
	if err != nil {
		return "", err
	}
	return m.Label, nil
}
