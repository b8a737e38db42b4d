package options

import (
	"github.com/spf13/cobra"
)

// NoteOptions carries the free-text note attached to a day's entry.
type NoteOptions struct {
	Note string
}

func AddNoteArgs(cmd *cobra.Command, o *NoteOptions) {
	cmd.Flags().StringVarP(&o.Note, "note", "n", "",
		"Attach a note to the entry.")
}

// NoteSet reports whether the user supplied the flag at all, so a save
// without it leaves an existing note untouched.
func (o *NoteOptions) NoteSet(cmd *cobra.Command) bool {
	return cmd.Flags().Changed("note")
}
