// Package export writes the journal out as CSV.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/moodlog/pkg/export"
	"tableflip.dev/moodlog/pkg/store"
)

// Export serializes the full collection in its stable iteration order.
// An empty Output writes to stdout.
type Export struct {
	Output      string
	Persistence store.Persistence
}

func (n *Export) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not export, no persistence")
	}

	all := n.Persistence.All()
	if len(all) == 0 {
		return errors.New("no entries to export")
	}

	if n.Output == "" {
		return export.CSV(os.Stdout, all)
	}

	f, err := os.Create(n.Output)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", n.Output, err)
	}
	defer func() { _ = f.Close() }()

	if err := export.CSV(f, all); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "exported %d entries to %s\n", len(all), n.Output)
	return nil
}
