package journal

import (
	"errors"
	"testing"

	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/mood"
	"tableflip.dev/moodlog/pkg/store"
)

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string      { return c.path }
func (c *testConfig) WeatherAPIKey() string { return "" }

func testStore(t *testing.T) store.Persistence {
	t.Helper()
	p, err := store.Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("unexpected error loading store: %v", err)
	}
	return p
}

func mustMood(t *testing.T, id string) *mood.Level {
	t.Helper()
	m, ok := mood.ByID(id)
	if !ok {
		t.Fatalf("unknown mood id %s", id)
	}
	return m
}

func TestSaveWithoutMoodRefused(t *testing.T) {
	p := testStore(t)
	d := New("2024-03-15")
	d.SetNote("just words")

	err := d.Save(p)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var ve *store.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	if len(p.All()) != 0 {
		t.Fatalf("refused save must not touch the collection")
	}
	// The draft itself is untouched; the user picks a mood and retries.
	if d.Entry().Note != "just words" {
		t.Fatalf("draft lost its note")
	}
}

func TestSaveThenResaveIdempotent(t *testing.T) {
	p := testStore(t)
	d := New("2024-03-15")
	d.SetMood(mustMood(t, "good"))
	d.SetNote("steady")

	if err := d.Save(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := d.Save(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all := p.All()
	if len(all) != 1 {
		t.Fatalf("expected one entry, got %d", len(all))
	}
	if all[0].Note != "steady" || all[0].Mood.ID != "good" {
		t.Fatalf("unexpected persisted entry: %+v", all[0])
	}
}

func TestDraftSurvivesSave(t *testing.T) {
	p := testStore(t)
	d := New("2024-03-15")
	d.SetMood(mustMood(t, "good"))

	if err := d.Save(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Date() != "2024-03-15" {
		t.Fatalf("draft lost its date")
	}
	if !d.Entry().HasMood() {
		t.Fatalf("draft cleared by save")
	}
}

func TestForDateRehydrates(t *testing.T) {
	p := testStore(t)
	d := New("2024-03-15")
	d.SetMood(mustMood(t, "amazing"))
	d.SetNote("beach day")
	if err := d.Save(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reopened := ForDate(p, "2024-03-15")
	e := reopened.Entry()
	if e.Mood == nil || e.Mood.ID != "amazing" || e.Note != "beach day" {
		t.Fatalf("reopened draft does not match saved entry: %+v", e)
	}

	fresh := ForDate(p, "2024-03-16")
	if fresh.Entry().HasMood() {
		t.Fatalf("expected empty draft for unlogged day")
	}
}

func TestApplyWeatherMatchingToken(t *testing.T) {
	d := New("2024-03-15")
	tok := d.RequestWeather()

	if !d.ApplyWeather(tok, &entry.Weather{Temp: 21, Description: "Clear", Icon: "01d"}) {
		t.Fatalf("expected weather applied")
	}
	w := d.Entry().Weather
	if w == nil || w.Description != "Clear" {
		t.Fatalf("weather not set on draft: %+v", w)
	}
}

func TestApplyWeatherStaleDateDiscarded(t *testing.T) {
	d := New("2024-03-15")
	tok := d.RequestWeather()

	// The draft moves on before the fetch lands.
	d.SetDate("2024-03-16")

	if d.ApplyWeather(tok, &entry.Weather{Temp: 21, Description: "Clear"}) {
		t.Fatalf("stale weather result must be discarded")
	}
	if d.Entry().Weather != nil {
		t.Fatalf("stale weather leaked into draft")
	}
}

func TestApplyWeatherStaleAfterDateRoundTrip(t *testing.T) {
	d := New("2024-03-15")
	tok := d.RequestWeather()

	// Moving away and back is still a different editing session for
	// the weather request.
	d.SetDate("2024-03-16")
	d.SetDate("2024-03-15")

	if d.ApplyWeather(tok, &entry.Weather{Temp: 21}) {
		t.Fatalf("superseded request token must not apply")
	}
}

func TestSaveBeforeWeatherArrives(t *testing.T) {
	p := testStore(t)
	d := New("2024-03-15")
	d.SetMood(mustMood(t, "neutral"))
	_ = d.RequestWeather()

	// Saving before the result lands persists without weather; the
	// entry is not retroactively patched.
	if err := d.Save(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := p.FindByDate("2024-03-15")
	if got.Weather != nil {
		t.Fatalf("expected no weather on early save")
	}
}
