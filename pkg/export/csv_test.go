package export

import (
	"strings"
	"testing"

	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/mood"
)

func mustMood(t *testing.T, id string) *mood.Level {
	t.Helper()
	m, ok := mood.ByID(id)
	if !ok {
		t.Fatalf("unknown mood id %s", id)
	}
	return m
}

func TestCSVHeaderAndRows(t *testing.T) {
	e := entry.New("2024-03-15", mustMood(t, "good"), "sunny walk")
	e.Weather = &entry.Weather{Temp: 18.5, Description: "Clouds", Icon: "03d"}

	var b strings.Builder
	if err := CSV(&b, []*entry.Entry{e}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines", len(lines))
	}
	if lines[0] != "Date,Mood,Weather,Temperature,Note" {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	if lines[1] != "2024-03-15,Good,Clouds,18.5°C,sunny walk" {
		t.Fatalf("unexpected row: %s", lines[1])
	}
}

func TestCSVQuotesNotes(t *testing.T) {
	e := entry.New("2024-03-15", mustMood(t, "bad"), `said "ugh", left early`)

	var b strings.Builder
	if err := CSV(&b, []*entry.Entry{e}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Quotes double, and the comma-bearing field is wrapped.
	want := `"said ""ugh"", left early"`
	if !strings.Contains(b.String(), want) {
		t.Fatalf("note not quote-escaped: %s", b.String())
	}
}

func TestCSVMissingWeather(t *testing.T) {
	e := entry.New("2024-03-15", mustMood(t, "neutral"), "")

	var b strings.Builder
	if err := CSV(&b, []*entry.Entry{e}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(b.String(), "2024-03-15,Neutral,N/A,N/A,") {
		t.Fatalf("expected N/A placeholders: %s", b.String())
	}
}

func TestCSVPreservesIterationOrder(t *testing.T) {
	entries := []*entry.Entry{
		entry.New("2024-03-16", mustMood(t, "good"), ""),
		entry.New("2024-03-14", mustMood(t, "bad"), ""),
	}

	var b strings.Builder
	if err := CSV(&b, entries); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := b.String()
	if strings.Index(out, "2024-03-16") > strings.Index(out, "2024-03-14") {
		t.Fatalf("export reordered the collection: %s", out)
	}
}

func TestPercentages(t *testing.T) {
	entries := []*entry.Entry{
		entry.New("2024-03-10", mustMood(t, "good"), ""),
		entry.New("2024-03-11", mustMood(t, "good"), ""),
		entry.New("2024-03-12", mustMood(t, "bad"), ""),
		entry.New("2024-03-13", nil, "draft"),
	}

	freqs := Percentages(entries)
	if len(freqs) != 2 {
		t.Fatalf("expected 2 frequencies, got %d", len(freqs))
	}
	if freqs[0].Label != "Good" || freqs[0].Count != 2 || freqs[0].Percent != 67 {
		t.Fatalf("unexpected top frequency: %+v", freqs[0])
	}
	if freqs[1].Label != "Bad" || freqs[1].Count != 1 || freqs[1].Percent != 33 {
		t.Fatalf("unexpected frequency: %+v", freqs[1])
	}
}

func TestPercentagesEmpty(t *testing.T) {
	if got := Percentages(nil); got != nil {
		t.Fatalf("expected nil for empty journal, got %+v", got)
	}
}
