// Package todo holds the to-do list state and the operations that change it.
//
// A Store reads the list once from the "todos" slot when it is created and
// writes the whole list back after every change to the items. The in-memory
// list is authoritative: storage failures are logged and remembered, never
// returned from an operation and never undone.
package todo

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	clog "github.com/charmbracelet/log"

	"github.com/idilsaglam/tada/internal/logging"
	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/store"
)

// StorageKey is the slot holding the persisted list.
const StorageKey = "todos"

// Store owns the to-do list, its pending input, filter and error message.
type Store struct {
	kv  store.KV
	log *clog.Logger

	items        []model.Item
	nextID       int
	pendingInput string
	filter       model.Filter
	errorMessage string
	storageErr   error
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger storage failures are reported to.
func WithLogger(l *clog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithFilter sets the initial filter.
func WithFilter(f model.Filter) Option {
	return func(s *Store) { s.filter = f }
}

// New creates a Store and loads the persisted list from kv. It never fails:
// missing, unreadable or malformed data yields an empty list.
func New(kv store.KV, opts ...Option) *Store {
	s := &Store{kv: kv, log: logging.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	s.load()
	return s
}

func (s *Store) load() {
	s.items = []model.Item{}
	s.nextID = 1

	b, err := s.kv.Get(StorageKey)
	switch {
	case errors.Is(err, store.ErrNotFound):
		s.log.Debug("no persisted todos", "key", StorageKey)
		return
	case errors.Is(err, store.ErrCorrupt):
		s.log.Warn("discarding malformed todos", "err", err)
		return
	case err != nil:
		s.storageErr = fmt.Errorf("%w: read %s: %v", ErrStorageUnavailable, StorageKey, err)
		s.log.Warn("reading todos failed, starting empty", "err", err)
		return
	}

	items, err := Decode(b)
	if err != nil {
		s.log.Warn("discarding malformed todos", "err", err)
		return
	}
	s.items = items
	for _, it := range items {
		if it.ID >= s.nextID {
			s.nextID = it.ID + 1
		}
	}
	s.log.Debug("loaded todos", "count", len(items))
}

// persist overwrites the slot with the full list.
func (s *Store) persist() {
	b, err := Encode(s.items)
	if err == nil {
		err = s.kv.Set(StorageKey, b)
	}
	if err != nil {
		s.storageErr = fmt.Errorf("%w: write %s: %v", ErrStorageUnavailable, StorageKey, err)
		s.log.Warn("writing todos failed", "err", err)
		return
	}
	s.storageErr = nil
}

// Items returns a copy of the list in insertion order.
func (s *Store) Items() []model.Item { return slices.Clone(s.items) }

// PendingInput is the text staged for the next add.
func (s *Store) PendingInput() string { return s.pendingInput }

// SetPendingInput stages text for the next add.
func (s *Store) SetPendingInput(text string) { s.pendingInput = text }

// Filter is the filter FilteredItems applies.
func (s *Store) Filter() model.Filter { return s.filter }

// SetFilter changes the filter; items are untouched.
func (s *Store) SetFilter(f model.Filter) { s.filter = f }

// ErrorMessage is the message left by the last rejected add, or "".
func (s *Store) ErrorMessage() string { return s.errorMessage }

// LastStorageError is the most recent read or write failure, cleared by the
// next successful write. It always wraps ErrStorageUnavailable.
func (s *Store) LastStorageError() error { return s.storageErr }

// Add appends a new active item with the trimmed text. A blank or duplicate
// text leaves the list alone, sets ErrorMessage and returns ErrEmptyInput or
// ErrDuplicateItem.
func (s *Store) Add(rawText string) error {
	text := strings.TrimSpace(rawText)
	if text == "" {
		s.errorMessage = ErrEmptyInput.Error()
		return ErrEmptyInput
	}
	for _, it := range s.items {
		if strings.EqualFold(strings.TrimSpace(it.Text), text) {
			s.errorMessage = ErrDuplicateItem.Error()
			return ErrDuplicateItem
		}
	}

	s.items = append(s.items, model.Item{ID: s.nextID, Text: text})
	s.nextID++
	s.pendingInput = ""
	s.errorMessage = ""
	s.persist()
	return nil
}

// Toggle flips the completed flag of the item with id. Unknown ids are ignored.
func (s *Store) Toggle(id int) {
	i := s.index(id)
	if i < 0 {
		return
	}
	s.items[i].Completed = !s.items[i].Completed
	s.persist()
}

// Delete removes the item with id. Unknown ids are ignored.
func (s *Store) Delete(id int) {
	i := s.index(id)
	if i < 0 {
		return
	}
	s.items = slices.Delete(s.items, i, i+1)
	s.persist()
}

// ClearCompleted removes every completed item.
func (s *Store) ClearCompleted() {
	n := len(s.items)
	s.items = slices.DeleteFunc(s.items, func(it model.Item) bool { return it.Completed })
	if len(s.items) != n {
		s.persist()
	}
}

// FilteredItems returns the items matching the current filter, in order.
func (s *Store) FilteredItems() []model.Item {
	out := make([]model.Item, 0, len(s.items))
	for _, it := range s.items {
		if s.filter.Match(it) {
			out = append(out, it)
		}
	}
	return out
}

// ActiveCount is the number of items not yet completed.
func (s *Store) ActiveCount() int {
	n := 0
	for _, it := range s.items {
		if !it.Completed {
			n++
		}
	}
	return n
}

// Lookup returns the item with id.
func (s *Store) Lookup(id int) (model.Item, bool) {
	i := s.index(id)
	if i < 0 {
		return model.Item{}, false
	}
	return s.items[i], true
}

func (s *Store) index(id int) int {
	return slices.IndexFunc(s.items, func(it model.Item) bool { return it.ID == id })
}
