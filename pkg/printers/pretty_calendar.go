package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/moodlog/pkg/calendar"
	"tableflip.dev/moodlog/pkg/datekey"
)

const width = len("Su Mo Tu We Th Fr Sa") // one calendar week

// Calendar prints the month grid. Days with a journal entry are bold;
// today is underlined.
func (pp *PrettyPrint) Calendar(year int, month time.Month, cells []calendar.Cell) {
	tf := color.New(color.FgWhite, color.Italic)

	m := fmt.Sprintf("%s %d", month.String(), year)
	mid := (width - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Printf("%s%s\n", strings.Repeat(" ", mid), m)

	h := color.New(color.Faint)
	_, _ = h.Println("Su Mo Tu We Th Fr Sa")

	empty := color.New(color.Faint, color.FgWhite)
	logged := color.New(color.Bold, color.FgHiWhite)
	today := color.New(color.Bold, color.FgHiWhite, color.Underline)

	col := 0
	for _, c := range cells {
		switch {
		case c.Blank():
			fmt.Print("   ")
		case datekey.IsToday(c.Date):
			_, _ = today.Printf("%2d", c.Day)
			fmt.Print(" ")
		case c.Entry != nil:
			_, _ = logged.Printf("%2d ", c.Day)
		default:
			_, _ = empty.Printf("%2d ", c.Day)
		}
		col++
		if col == 7 {
			col = 0
			fmt.Print("\n")
		}
	}
	if col != 0 {
		fmt.Print("\n")
	}

	// Legend: one line per logged day, with the day's mood.
	fmt.Print("\n")
	for _, c := range cells {
		if c.Entry == nil {
			continue
		}
		_, _ = empty.Printf("%2d  ", c.Day)
		pp.Entry(c.Entry)
	}
}
