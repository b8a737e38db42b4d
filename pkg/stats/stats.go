// Package stats computes windowed statistics over the journal: a mood
// frequency distribution, a chronological trend series, and the modal
// mood. Like the calendar, everything here is derived state recomputed
// from the full collection on each call.
package stats

import (
	"fmt"
	"sort"
	"time"

	"tableflip.dev/moodlog/pkg/datekey"
	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/mood"
)

// Window scopes statistics to a trailing time range.
type Window string

const (
	Week  Window = "week"
	Month Window = "month"
	Year  Window = "year"
	All   Window = "all"
)

func ParseWindow(s string) (Window, error) {
	switch Window(s) {
	case Week, Month, Year, All:
		return Window(s), nil
	case "":
		return Month, nil
	}
	return "", fmt.Errorf("stats: unknown window %q, expected week, month, year, or all", s)
}

// NoTrend is the sentinel rank for a windowed entry without a mood; the
// point stays in the series to preserve date-axis continuity.
const NoTrend = -1

// Point pairs a date with the mood's catalog rank for the trend chart.
type Point struct {
	Date datekey.Key
	Rank int
}

// LabelCount is one slot of the distribution. Slots appear in the order
// their label was first seen while iterating the windowed entries,
// which is also the documented modal tie-break order.
type LabelCount struct {
	Label string
	Count int
}

// Snapshot is the derived statistics view for one window.
type Snapshot struct {
	Entries      []*entry.Entry
	Distribution []LabelCount
	Trend        []Point
	Modal        *mood.Level
}

// Total is the raw windowed entry count, including moodless drafts that
// the distribution excludes.
func (s Snapshot) Total() int {
	return len(s.Entries)
}

// Percent reports a label's share of the distribution, rounded.
func (s Snapshot) Percent(label string) int {
	counted := 0
	for _, lc := range s.Distribution {
		counted += lc.Count
	}
	if counted == 0 {
		return 0
	}
	for _, lc := range s.Distribution {
		if lc.Label == label {
			return int(float64(lc.Count)/float64(counted)*100 + 0.5)
		}
	}
	return 0
}

// Aggregate computes the statistics snapshot for entries inside the
// window ending at ref. The lower bound is a calendar date, inclusive:
// an entry dated exactly ref minus the window is in, regardless of
// time-of-day. Month and year windows are calendar-aware, preserving
// ref's day-of-month clamped to shorter target months.
func Aggregate(entries []*entry.Entry, w Window, ref time.Time) Snapshot {
	floor := windowFloor(w, ref)
	ceil := datekey.From(ref)

	windowed := make([]*entry.Entry, 0, len(entries))
	for _, e := range entries {
		if floor != "" && e.Date < floor {
			continue
		}
		if e.Date > ceil {
			continue
		}
		windowed = append(windowed, e)
	}

	sort.SliceStable(windowed, func(i, j int) bool {
		return windowed[i].Date < windowed[j].Date
	})

	counts := make(map[string]int, len(windowed))
	order := make([]string, 0, len(windowed))
	trend := make([]Point, 0, len(windowed))
	for _, e := range windowed {
		if e.Mood == nil {
			trend = append(trend, Point{Date: e.Date, Rank: NoTrend})
			continue
		}
		trend = append(trend, Point{Date: e.Date, Rank: e.Mood.Rank})
		if _, seen := counts[e.Mood.Label]; !seen {
			order = append(order, e.Mood.Label)
		}
		counts[e.Mood.Label]++
	}

	dist := make([]LabelCount, 0, len(order))
	for _, label := range order {
		dist = append(dist, LabelCount{Label: label, Count: counts[label]})
	}

	return Snapshot{
		Entries:      windowed,
		Distribution: dist,
		Trend:        trend,
		Modal:        modal(dist),
	}
}

// windowFloor returns the inclusive lower bound key, or "" for All.
func windowFloor(w Window, ref time.Time) datekey.Key {
	switch w {
	case Week:
		return datekey.From(datekey.MinusDays(ref, 7))
	case Month:
		return datekey.From(datekey.MinusMonths(ref, 1))
	case Year:
		return datekey.From(datekey.MinusYears(ref, 1))
	}
	return ""
}

// modal picks the label with the strictly highest count; a tie keeps
// the label seen first. An empty distribution has no modal mood.
func modal(dist []LabelCount) *mood.Level {
	best := -1
	var label string
	for _, lc := range dist {
		if lc.Count > best {
			best = lc.Count
			label = lc.Label
		}
	}
	if best < 0 {
		return nil
	}
	if m, ok := mood.ByLabel(label); ok {
		return m
	}
	return nil
}
