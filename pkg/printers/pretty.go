package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/moodlog/pkg/datekey"
	"tableflip.dev/moodlog/pkg/entry"
)

type PrettyPrint struct {
	ShowDate bool
}

var (
	spacing = strings.Repeat(" ", len("Wed, Sep 30  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

// Entry prints a single journal entry line: mood, weather, and note.
func (pp *PrettyPrint) Entry(e *entry.Entry) {
	t := color.New()
	d := color.New(color.FgHiYellow, color.Italic, color.Faint)
	f := color.New(color.Faint)

	if pp.ShowDate {
		label := datekey.Display(e.Date)
		_, _ = d.Print(label)
		if pad := len(spacing) - len(label); pad > 0 {
			_, _ = d.Print(strings.Repeat(" ", pad))
		}
	}

	if e.Mood != nil {
		_, _ = t.Printf("%s %s", e.Mood.Emoji, e.Mood.Label)
	} else {
		_, _ = f.Print("(no mood)")
	}
	if e.Weather != nil {
		_, _ = f.Printf("  %s %g°C", e.Weather.Description, e.Weather.Temp)
	}
	if e.Note != "" {
		_, _ = t.Printf("  %s", e.Note)
	}
	_, _ = t.Println("")
}

// Entries prints a list of entries, or a faint placeholder for none.
func (pp *PrettyPrint) Entries(entries ...*entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}
	for _, e := range entries {
		pp.Entry(e)
	}
	fmt.Println("")
}
