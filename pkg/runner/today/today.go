// Package today shows the journal entry for a single day.
package today

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/moodlog/pkg/datekey"
	"tableflip.dev/moodlog/pkg/printers"
	"tableflip.dev/moodlog/pkg/store"
)

type Today struct {
	On          datekey.Key
	Persistence store.Persistence
}

func (n *Today) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show, no persistence")
	}
	if n.On == "" {
		n.On = datekey.Today()
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title(datekey.Display(n.On))

	if e, ok := n.Persistence.FindByDate(n.On); ok {
		pp.Entries(e)
	} else {
		pp.Entries()
	}
	return nil
}
