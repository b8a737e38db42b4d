package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/mood"
	"tableflip.dev/moodlog/pkg/runner/log"
	"tableflip.dev/moodlog/pkg/store"
	"tableflip.dev/moodlog/pkg/weather"
)

func addLog(topLevel *cobra.Command) {
	no := &options.NoteOptions{}
	oo := &options.OnOptions{}
	wo := &options.WeatherOptions{}

	var lvl *mood.Level

	long := strings.Builder{}
	long.WriteString("Record how the day felt. Saving again for the same day replaces the entry.\n\n")
	long.WriteString("Moods:\n")

	validArgs := make([]string, 0, len(mood.Options()))
	for _, m := range mood.Options() {
		long.WriteString(fmt.Sprintf("%s %s: %s\n", m.Emoji, m.ID, m.Description))
		validArgs = append(validArgs, m.ID)
	}

	cmd := &cobra.Command{
		Use:   "log [mood]",
		Short: "log today's mood",
		Long:  long.String(),
		Example: `
moodlog log good
moodlog log amazing --note "great day at the beach" --weather --lat 47.6 --lon -122.3
moodlog log bad --on="2-28"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a mood")
			}
			var err error
			lvl, err = mood.ForAlias(args[0])
			return err
		},
		ValidArgs: validArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}
			on, err := oo.GetOn()
			if err != nil {
				return err
			}

			s := log.Log{
				Mood:         lvl,
				Note:         no.Note,
				NoteSet:      no.NoteSet(cmd),
				On:           on,
				FetchWeather: wo.Fetch,
				Lat:          wo.Lat,
				Lon:          wo.Lon,
				Persistence:  p,
			}
			if wo.Fetch {
				s.Weather = weather.New(cfg.WeatherAPIKey())
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddNoteArgs(cmd, no)
	options.AddOnArgs(cmd, oo)
	options.AddWeatherArgs(cmd, wo)
	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
