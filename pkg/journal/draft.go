// Package journal owns the draft entry being composed for a day and
// the save transition into the store.
package journal

import (
	"tableflip.dev/moodlog/pkg/datekey"
	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/mood"
	"tableflip.dev/moodlog/pkg/store"
)

// Draft is the in-progress entry for the currently viewed day. Fields
// are set individually while editing; Save performs the only
// transition into persistence. A draft survives its own save, so the
// view keeps showing the just-persisted state and re-saving unchanged
// content is idempotent.
type Draft struct {
	working *entry.Entry

	// weatherSeq invalidates outstanding weather requests whenever the
	// draft moves to a different date.
	weatherSeq int
}

// New starts an empty draft for the given day.
func New(date datekey.Key) *Draft {
	return &Draft{working: entry.New(date, nil, "")}
}

// ForDate starts a draft for the given day, rehydrated from the
// persisted entry when one exists.
func ForDate(p store.Persistence, date datekey.Key) *Draft {
	if e, ok := p.FindByDate(date); ok {
		return &Draft{working: e}
	}
	return New(date)
}

func (d *Draft) Date() datekey.Key {
	return d.working.Date
}

func (d *Draft) SetMood(m *mood.Level) {
	d.working.Mood = m
}

func (d *Draft) SetNote(note string) {
	d.working.Note = note
}

// SetDate moves the draft to another day and invalidates any weather
// request issued for the previous one.
func (d *Draft) SetDate(date datekey.Key) {
	if d.working.Date == date {
		return
	}
	d.working.Date = date
	d.weatherSeq++
}

// Entry returns a copy of the draft's current state.
func (d *Draft) Entry() *entry.Entry {
	return d.working.Clone()
}

// WeatherToken ties an in-flight weather fetch to the draft date it
// was issued for.
type WeatherToken struct {
	date datekey.Key
	seq  int
}

// RequestWeather returns the token the weather collaborator's callback
// must present when the fetch completes.
func (d *Draft) RequestWeather() WeatherToken {
	return WeatherToken{date: d.working.Date, seq: d.weatherSeq}
}

// ApplyWeather sets the draft's weather field from a completed fetch.
// A result that arrives after the draft moved to a different date is
// discarded; it reports whether the result was applied.
func (d *Draft) ApplyWeather(tok WeatherToken, w *entry.Weather) bool {
	if tok.date != d.working.Date || tok.seq != d.weatherSeq {
		return false
	}
	d.working.Weather = w
	return true
}

// Save upserts the draft into the store. With no mood selected the
// transition is refused with a ValidationError and nothing is written.
// A PersistenceError still means the entry is held in memory; the
// caller decides how loudly to warn. The draft keeps representing the
// day after a successful save.
func (d *Draft) Save(p store.Persistence) error {
	return p.Upsert(d.working)
}
