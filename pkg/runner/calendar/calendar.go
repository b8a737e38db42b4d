// Package calendar renders the month view of the journal.
package calendar

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/moodlog/pkg/calendar"
	"tableflip.dev/moodlog/pkg/datekey"
	"tableflip.dev/moodlog/pkg/printers"
	"tableflip.dev/moodlog/pkg/store"
)

// Calendar projects one month of the journal onto a grid and lists the
// entries matching the optional mood filter underneath. The filter
// only scopes the list; the grid always binds by date.
type Calendar struct {
	On          datekey.Key
	MoodLabel   string
	Persistence store.Persistence
}

func (n *Calendar) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show calendar, no persistence")
	}
	if n.On == "" {
		n.On = datekey.Today()
	}
	t, err := datekey.Parse(n.On)
	if err != nil {
		return err
	}

	all := n.Persistence.All()
	cells := calendar.Project(t.Year(), t.Month(), all)
	matching := calendar.Matching(all, n.MoodLabel)

	pp := printers.PrettyPrint{ShowDate: true}
	fmt.Println("")
	pp.Calendar(t.Year(), t.Month(), cells)

	pp.NewLine()
	if n.MoodLabel == "" {
		pp.TitleWithCount("All entries", len(matching))
	} else {
		pp.TitleWithCount(fmt.Sprintf("Entries when feeling %q", n.MoodLabel), len(matching))
	}
	pp.Entries(matching...)
	return nil
}
