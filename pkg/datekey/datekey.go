// Package datekey canonicalizes calendar dates into stable, lexically
// sortable YYYY-MM-DD keys, the identity used for journal entries.
package datekey

import (
	"fmt"
	"time"
)

const (
	layoutISO     = "2006-01-02"
	layoutDisplay = "Mon, Jan 2"
)

// Key is a canonical YYYY-MM-DD date string. Keys compare and sort as
// plain strings in chronological order.
type Key string

// From reduces a time to its calendar day in local time.
func From(t time.Time) Key {
	return Key(t.Local().Format(layoutISO))
}

func Today() Key {
	return From(time.Now())
}

// Parse returns the midnight local time for a key.
func Parse(k Key) (time.Time, error) {
	t, err := time.ParseInLocation(layoutISO, string(k), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("datekey: parse %q: %w", k, err)
	}
	return t, nil
}

// Display formats a key for humans, e.g. "Fri, Mar 15".
func Display(k Key) string {
	t, err := Parse(k)
	if err != nil {
		return string(k)
	}
	return t.Format(layoutDisplay)
}

func (k Key) String() string {
	return string(k)
}

func IsToday(k Key) bool {
	return k == Today()
}

// MinusDays moves a date back n whole days.
func MinusDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, -n)
}

// MinusMonths moves a date back n calendar months, preserving the
// day-of-month and clamping it to the last day of shorter target
// months. This is deliberately not AddDate, which normalizes March 31
// minus one month into March 3.
func MinusMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	m := int(month) - n
	for m < 1 {
		m += 12
		year--
	}
	if max := DaysInMonth(year, time.Month(m)); day > max {
		day = max
	}
	return time.Date(year, time.Month(m), day, 0, 0, 0, 0, t.Location())
}

// MinusYears moves a date back n calendar years, clamping Feb 29 to
// Feb 28 in non-leap target years.
func MinusYears(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	year -= n
	if max := DaysInMonth(year, month); day > max {
		day = max
	}
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// DaysInMonth counts the days in a month, honoring leap years. Day
// zero of the following month is the last day of this one.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday is the weekday of the first of the month, Sunday = 0.
func FirstWeekday(year int, month time.Month) time.Weekday {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
}
