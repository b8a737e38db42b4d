package printers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/moodlog/pkg/mood"
	"tableflip.dev/moodlog/pkg/stats"
)

const barWidth = 24

// Stats prints the windowed snapshot: a summary table, the mood
// distribution as colored bars, and the trend strip.
func (pp *PrettyPrint) Stats(w stats.Window, snap stats.Snapshot) {
	if snap.Total() == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Printf(" no entries in the last %s\n\n", w)
		return
	}

	modal := "none"
	if snap.Modal != nil {
		modal = snap.Modal.String()
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("Window", string(w))
	tbl.AddRow("Entries", fmt.Sprintf("%d", snap.Total()))
	tbl.AddRow("Most common", modal)
	_, _ = fmt.Fprintln(color.Output, tbl)

	pp.NewLine()
	pp.distribution(snap)
	pp.NewLine()
	pp.trend(snap)
}

// distribution renders one bar per mood label, scaled to the largest
// count and tinted with the catalog color.
func (pp *PrettyPrint) distribution(snap stats.Snapshot) {
	max := 0
	for _, lc := range snap.Distribution {
		if lc.Count > max {
			max = lc.Count
		}
	}
	if max == 0 {
		return
	}

	f := color.New(color.Faint)
	for _, lc := range snap.Distribution {
		style := lipgloss.NewStyle()
		label := lc.Label
		if m, ok := mood.ByLabel(lc.Label); ok {
			style = style.Foreground(lipgloss.Color(m.Color))
			label = fmt.Sprintf("%s %-8s", m.Emoji, m.Label)
		}

		n := lc.Count * barWidth / max
		if n == 0 {
			n = 1
		}
		fmt.Printf("%s %s", label, style.Render(strings.Repeat("█", n)))
		_, _ = f.Printf(" %d (%d%%)\n", lc.Count, snap.Percent(lc.Label))
	}
}

// trend renders the chronological strip, one glyph per windowed day.
// A dot marks a day whose entry has no mood.
func (pp *PrettyPrint) trend(snap stats.Snapshot) {
	if len(snap.Trend) == 0 {
		return
	}

	f := color.New(color.Faint)
	_, _ = f.Printf("%s .. %s\n", snap.Trend[0].Date, snap.Trend[len(snap.Trend)-1].Date)

	levels := mood.Options()
	for _, p := range snap.Trend {
		if p.Rank == stats.NoTrend || p.Rank < 0 || p.Rank >= len(levels) {
			_, _ = f.Print("·")
			continue
		}
		fmt.Print(levels[p.Rank].Emoji)
	}
	fmt.Print("\n\n")
}
