// Package options defines shared flag helpers for CLI commands.
package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/datekey"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1-2"
)

// OnOptions selects the day a command operates on.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2025-2-28" or --on="2-28". Defaults to today.`)
}

// GetOn resolves the flag to a date key. A month-day form gets the
// current year. An empty flag means today.
func (o *OnOptions) GetOn() (datekey.Key, error) {
	if o.OnString == "" {
		return datekey.Today(), nil
	}
	t, err := time.ParseInLocation(layoutISO, o.OnString, time.Local)
	if err != nil {
		t, err = time.ParseInLocation(layoutISOShort, o.OnString, time.Local)
		if err != nil {
			return "", err
		}
		// The short form parses at year 0, a leap year, so Feb 29 can
		// normalize into March once the current year is added.
		month, day := t.Month(), t.Day()
		t = t.AddDate(time.Now().Year(), 0, 0)
		if t.Month() != month || t.Day() != day {
			return "", fmt.Errorf("no such day this year: %q", o.OnString)
		}
	}
	return datekey.From(t), nil
}
