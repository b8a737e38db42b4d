// Package export serializes the journal for use outside the tool.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"tableflip.dev/moodlog/pkg/entry"
)

var csvHeader = []string{"Date", "Mood", "Weather", "Temperature", "Note"}

// CSV writes the collection in its stable iteration order. Notes
// containing delimiters or quotes are quote-escaped by doubling the
// quote character, per RFC 4180.
func CSV(w io.Writer, entries []*entry.Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}

	for _, e := range entries {
		moodLabel := ""
		if e.Mood != nil {
			moodLabel = e.Mood.Label
		}
		desc, temp := "N/A", "N/A"
		if e.Weather != nil {
			desc = e.Weather.Description
			temp = fmt.Sprintf("%g°C", e.Weather.Temp)
		}
		if err := cw.Write([]string{string(e.Date), moodLabel, desc, temp, e.Note}); err != nil {
			return fmt.Errorf("export: write entry %s: %w", e.Date, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: flush: %w", err)
	}
	return nil
}

// GroupByMood buckets entries by mood label. Moodless drafts are
// skipped.
func GroupByMood(entries []*entry.Entry) map[string][]*entry.Entry {
	grouped := make(map[string][]*entry.Entry)
	for _, e := range entries {
		if e.Mood == nil {
			continue
		}
		grouped[e.Mood.Label] = append(grouped[e.Mood.Label], e)
	}
	return grouped
}

// Frequency is one mood's share of the journal.
type Frequency struct {
	Label   string
	Count   int
	Percent int
}

// Percentages computes per-mood frequencies sorted by count descending.
func Percentages(entries []*entry.Entry) []Frequency {
	grouped := GroupByMood(entries)
	total := 0
	for _, g := range grouped {
		total += len(g)
	}
	if total == 0 {
		return nil
	}

	out := make([]Frequency, 0, len(grouped))
	for label, g := range grouped {
		out = append(out, Frequency{
			Label:   label,
			Count:   len(g),
			Percent: int(float64(len(g))/float64(total)*100 + 0.5),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}
