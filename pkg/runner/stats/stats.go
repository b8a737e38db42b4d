// Package stats renders windowed journal statistics.
package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/moodlog/pkg/printers"
	"tableflip.dev/moodlog/pkg/stats"
	"tableflip.dev/moodlog/pkg/store"
)

type Stats struct {
	Window      stats.Window
	Reference   time.Time
	Persistence store.Persistence
}

func (n *Stats) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show stats, no persistence")
	}
	if n.Window == "" {
		n.Window = stats.Month
	}
	if n.Reference.IsZero() {
		n.Reference = time.Now()
	}

	snap := stats.Aggregate(n.Persistence.All(), n.Window, n.Reference)

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Mood statistics")
	pp.Stats(n.Window, snap)
	return nil
}
