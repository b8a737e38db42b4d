// Package log records the day's mood entry.
package log

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/moodlog/pkg/datekey"
	"tableflip.dev/moodlog/pkg/journal"
	"tableflip.dev/moodlog/pkg/mood"
	"tableflip.dev/moodlog/pkg/printers"
	"tableflip.dev/moodlog/pkg/store"
	"tableflip.dev/moodlog/pkg/weather"
)

// Log composes the draft for a day and saves it.
type Log struct {
	Mood    *mood.Level
	Note    string
	NoteSet bool
	On      datekey.Key

	// FetchWeather attaches current conditions when a client is
	// configured. A failed lookup warns and saves without weather.
	FetchWeather bool
	Lat, Lon     float64
	Weather      *weather.Client

	Persistence store.Persistence
}

const weatherTimeout = 10 * time.Second

func (n *Log) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not log, no persistence")
	}
	if n.On == "" {
		n.On = datekey.Today()
	}

	d := journal.ForDate(n.Persistence, n.On)
	d.SetMood(n.Mood)
	if n.NoteSet {
		d.SetNote(n.Note)
	}

	if n.FetchWeather {
		n.attachWeather(ctx, d)
	}

	if err := d.Save(n.Persistence); err != nil {
		var pe *store.PersistenceError
		if errors.As(err, &pe) {
			// The entry is held in memory; warn and keep going so the
			// user's text is not silently lost.
			fmt.Fprintf(os.Stderr, "warning: %v\n", pe)
		} else {
			return err
		}
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title(datekey.Display(d.Date()))
	pp.Entries(d.Entry())
	return nil
}

// attachWeather runs the collaborator lookup. The token guard makes a
// late result for a superseded date a no-op, and any failure is
// surfaced with a retry hint rather than blocking the save.
func (n *Log) attachWeather(ctx context.Context, d *journal.Draft) {
	if n.Weather == nil {
		return
	}
	tok := d.RequestWeather()

	wctx, cancel := context.WithTimeout(ctx, weatherTimeout)
	defer cancel()

	rep, err := n.Weather.Current(wctx, n.Lat, n.Lon)
	if err != nil {
		w := color.New(color.FgYellow)
		_, _ = w.Fprintf(os.Stderr, "weather lookup failed: %v\n", err)
		_, _ = w.Fprintln(os.Stderr, "saving without weather; run again with --weather to retry")
		return
	}
	d.ApplyWeather(tok, rep.Snapshot())
}
