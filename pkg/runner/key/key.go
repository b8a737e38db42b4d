package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/moodlog/pkg/mood"
)

type Key struct{}

// Do prints the mood catalog: one row per level, most negative first.
func (k *Key) Do(ctx context.Context) error {
	b := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(b.Sprint("Mood"), b.Sprint("Emoji"), b.Sprint("Meaning"))
	for _, l := range mood.Options() {
		tbl.AddRow(l.ID, l.Emoji, l.Description)
	}

	t := color.New(color.Bold, color.Underline)
	_, _ = fmt.Fprintln(color.Output, t.Sprint("\nMood scale"))
	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}
