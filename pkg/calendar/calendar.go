// Package calendar projects the journal onto a month grid. The grid is
// derived state: it is rebuilt in full from the current collection on
// every call, never patched incrementally.
package calendar

import (
	"time"

	"tableflip.dev/moodlog/pkg/datekey"
	"tableflip.dev/moodlog/pkg/entry"
)

// Cell is one slot in a 7-column month grid. Day zero marks a leading
// blank used to align the first of the month to its weekday.
type Cell struct {
	Day   int
	Date  datekey.Key
	Entry *entry.Entry
}

func (c Cell) Blank() bool {
	return c.Day == 0
}

// Project lays out one month: the weekday of the first produces that
// many leading blanks, then one cell per day, each bound to its entry
// by date key when one exists. No trailing filler is emitted.
func Project(year int, month time.Month, entries []*entry.Entry) []Cell {
	days := datekey.DaysInMonth(year, month)
	lead := int(datekey.FirstWeekday(year, month))

	byDate := make(map[datekey.Key]*entry.Entry, len(entries))
	for _, e := range entries {
		byDate[e.Date] = e
	}

	cells := make([]Cell, 0, lead+days)
	for i := 0; i < lead; i++ {
		cells = append(cells, Cell{})
	}
	for d := 1; d <= days; d++ {
		k := datekey.From(time.Date(year, month, d, 0, 0, 0, 0, time.Local))
		cells = append(cells, Cell{
			Day:   d,
			Date:  k,
			Entry: byDate[k],
		})
	}
	return cells
}

// Matching filters entries by mood label for the companion list shown
// beside the grid. Filtering never removes calendar cells; binding is
// always by date. An empty label matches everything.
func Matching(entries []*entry.Entry, label string) []*entry.Entry {
	matched := make([]*entry.Entry, 0, len(entries))
	for _, e := range entries {
		if label == "" || (e.Mood != nil && e.Mood.Label == label) {
			matched = append(matched, e)
		}
	}
	return matched
}
