package mood

import (
	"fmt"
	"strings"
)

// Level is one step on the mood scale. Rank is the level's position in
// the catalog: 0 is the most negative valence, and it is the only
// ordering the trend chart uses.
type Level struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Emoji       string `json:"emoji"`
	Color       string `json:"color"`
	Description string `json:"description,omitempty"`
	Rank        int    `json:"rank"`
}

func Options() []Level {
	return []Level{
		{
			ID:          "awful",
			Label:       "Awful",
			Emoji:       "😭",
			Color:       "#ff5252",
			Description: "Feeling extremely sad or upset",
			Rank:        0,
		}, {
			ID:          "bad",
			Label:       "Bad",
			Emoji:       "😔",
			Color:       "#ff9800",
			Description: "Feeling down or in a negative mood",
			Rank:        1,
		}, {
			ID:          "neutral",
			Label:       "Neutral",
			Emoji:       "😐",
			Color:       "#ffeb3b",
			Description: "Neither positive nor negative",
			Rank:        2,
		}, {
			ID:          "good",
			Label:       "Good",
			Emoji:       "🙂",
			Color:       "#8bc34a",
			Description: "Feeling pretty good today",
			Rank:        3,
		}, {
			ID:          "amazing",
			Label:       "Amazing",
			Emoji:       "😁",
			Color:       "#4caf50",
			Description: "Feeling great and positive",
			Rank:        4,
		},
	}
}

// ByID resolves a catalog level from its stable identifier.
func ByID(id string) (*Level, bool) {
	for _, l := range Options() {
		if l.ID == id {
			return &l, true
		}
	}
	return nil, false
}

// ByLabel resolves a catalog level from its display label.
func ByLabel(label string) (*Level, bool) {
	for _, l := range Options() {
		if l.Label == label {
			return &l, true
		}
	}
	return nil, false
}

// ForAlias resolves a level from user input, matching either the id or
// the label case-insensitively.
func ForAlias(s string) (*Level, error) {
	for _, l := range Options() {
		if strings.EqualFold(l.ID, s) || strings.EqualFold(l.Label, s) {
			return &l, nil
		}
	}
	ids := make([]string, 0, len(Options()))
	for _, l := range Options() {
		ids = append(ids, l.ID)
	}
	return nil, fmt.Errorf("unknown mood %q, expected one of: %s", s, strings.Join(ids, ", "))
}

func (l Level) String() string {
	return l.Emoji + " " + l.Label
}
