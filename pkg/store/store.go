package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/moodlog/pkg/datekey"
	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/mood"
)

// CurrentSchema tags the persisted envelope so future field additions
// can be migrated deterministically.
const CurrentSchema = 1

// journalKey is the single durable key holding the whole collection.
const journalKey = "journal"

// Persistence defines the persistence contract for journal entries.
// It owns the authoritative collection: at most one entry per calendar
// day, kept in insertion order, written through on every mutation.
type Persistence interface {
	All() []*entry.Entry
	FindByDate(k datekey.Key) (*entry.Entry, bool)
	Upsert(e *entry.Entry) error
}

// envelope is the on-disk shape: a schema version plus the collection
// as an append-ordered array.
type envelope struct {
	Schema  int            `json:"schema"`
	Entries []*entry.Entry `json:"entries"`
}

// Load creates a Persistence backed by diskv using the provided config.
// An unreadable or corrupt journal is replaced with an empty collection
// rather than blocking journaling.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	p := &persistence{d: diskv.New(diskv.Options{
		BasePath: cfg.BasePath(),
		Transform: func(s string) []string {
			return []string{}
		},
		CacheSizeMax: 1024 * 1024, // 1MB
	})}
	p.entries = p.read()
	return p, nil
}

type persistence struct {
	d       *diskv.Diskv
	entries []*entry.Entry
}

// read rehydrates the collection. A missing key is a fresh journal; a
// malformed one is reported and discarded, never surfaced as an error.
func (p *persistence) read() []*entry.Entry {
	val, err := p.d.Read(journalKey)
	if err != nil {
		return nil
	}

	env := envelope{}
	if err := json.Unmarshal(val, &env); err != nil || env.Entries == nil {
		// Journals written before the schema envelope were a bare array.
		var list []*entry.Entry
		if err2 := json.Unmarshal(val, &list); err2 != nil {
			if err == nil {
				// Valid JSON, but neither an envelope nor an array.
				err = err2
			}
			fmt.Fprintf(os.Stderr, "store: unreadable journal, starting empty: %v\n", err)
			return nil
		}
		env.Entries = list
	}

	all := make([]*entry.Entry, 0, len(env.Entries))
	for _, e := range env.Entries {
		if e == nil || e.Date == "" {
			continue
		}
		normalizeMood(e)
		all = append(all, e)
	}
	return all
}

// normalizeMood re-resolves a persisted mood against the canonical
// catalog by id, so stale copies of label, color, or rank self-heal on
// load.
func normalizeMood(e *entry.Entry) {
	if e.Mood == nil {
		return
	}
	if m, ok := mood.ByID(e.Mood.ID); ok {
		e.Mood = m
	}
}

func (p *persistence) All() []*entry.Entry {
	all := make([]*entry.Entry, 0, len(p.entries))
	for _, e := range p.entries {
		all = append(all, e.Clone())
	}
	return all
}

func (p *persistence) FindByDate(k datekey.Key) (*entry.Entry, bool) {
	for _, e := range p.entries {
		if e.Date == k {
			return e.Clone(), true
		}
	}
	return nil, false
}

// Upsert saves an entry under its date key. An existing entry for the
// same day is replaced in place, preserving collection order; otherwise
// the entry is appended. The whole collection is re-serialized and
// written before Upsert returns. On a write failure the in-memory
// mutation is kept and a PersistenceError reports that it did not
// durably land.
func (p *persistence) Upsert(e *entry.Entry) error {
	if !e.HasMood() {
		return &ValidationError{Reason: ErrNoMood}
	}
	if e.Date == "" {
		return &ValidationError{Reason: fmt.Errorf("store: entry has no date")}
	}

	saved := e.Clone()
	replaced := false
	for i, existing := range p.entries {
		if existing.Date == saved.Date {
			p.entries[i] = saved
			replaced = true
			break
		}
	}
	if !replaced {
		p.entries = append(p.entries, saved)
	}

	return p.flush()
}

func (p *persistence) flush() error {
	data, err := json.Marshal(envelope{
		Schema:  CurrentSchema,
		Entries: p.entries,
	})
	if err != nil {
		return &PersistenceError{Err: err}
	}
	if err := p.d.Write(journalKey, data); err != nil {
		return &PersistenceError{Err: err}
	}
	return nil
}
