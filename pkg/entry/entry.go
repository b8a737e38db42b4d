package entry

import (
	"tableflip.dev/moodlog/pkg/datekey"
	"tableflip.dev/moodlog/pkg/mood"
)

// Weather is the snapshot the weather collaborator hands over at save
// time. The journal stores it verbatim and never fetches it itself.
type Weather struct {
	Temp        float64 `json:"temp"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}

// Entry is one journaled day. Date is the entry's identity: the store
// keeps at most one entry per calendar day. A nil Mood is only valid
// while the entry is a draft; the store refuses to persist it.
type Entry struct {
	Date    datekey.Key `json:"date"`
	Mood    *mood.Level `json:"mood,omitempty"`
	Note    string      `json:"note,omitempty"`
	Weather *Weather    `json:"weather,omitempty"`
}

func New(date datekey.Key, m *mood.Level, note string) *Entry {
	return &Entry{
		Date: date,
		Mood: m,
		Note: note,
	}
}

func (e *Entry) HasMood() bool {
	return e != nil && e.Mood != nil
}

// Clone returns a deep copy so callers can hand entries across
// component boundaries without sharing mutable state.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	c := *e
	if e.Mood != nil {
		m := *e.Mood
		c.Mood = &m
	}
	if e.Weather != nil {
		w := *e.Weather
		c.Weather = &w
	}
	return &c
}
