// Package categories owns the authoritative category collection and keeps it
// synchronized with durable storage.
package categories

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"tableflip.dev/agenda/pkg/category"
	"tableflip.dev/agenda/pkg/store"
)

// DocumentName is the logical storage name for the category collection.
const DocumentName = "taskTypes"

// Store owns the in-memory category collection. Every mutation rewrites the
// whole persisted document before returning; there is no dirty tracking.
type Store struct {
	mu      sync.Mutex
	gateway store.Gateway
	items   []category.Category
	seeded  bool
	subs    []chan []category.Category
}

// NewStore wires a store to its persistence gateway. Call Load before use.
func NewStore(g store.Gateway) *Store {
	return &Store{gateway: g}
}

// Load reads the persisted collection. Absent, empty, or unreadable storage
// never fails the caller: the default set is seeded and persisted instead,
// and read problems are logged.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.gateway.Load(DocumentName)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "categories: load: %v\n", err)
		}
		s.ensureDefaultsLocked()
		return
	}
	items, err := category.UnmarshalList(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "categories: decode: %v\n", err)
		s.ensureDefaultsLocked()
		return
	}
	// A decoded-empty document counts as first run, same as absent
	// storage; ensureDefaultsLocked seeds it.
	s.items = items
	s.ensureDefaultsLocked()
	s.publishLocked()
}

// EnsureDefaults seeds the first-run category set if the store is empty.
// It is the explicit bootstrap step; Load and Add call it themselves, so
// callers only need it when they want seeding without a load.
func (s *Store) EnsureDefaults() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureDefaultsLocked()
}

func (s *Store) ensureDefaultsLocked() {
	if len(s.items) > 0 {
		s.seeded = true
		return
	}
	if s.seeded {
		return
	}
	s.items = category.Defaults()
	s.seeded = true
	if err := s.persistLocked(); err != nil {
		fmt.Fprintf(os.Stderr, "categories: persist defaults: %v\n", err)
	}
	s.publishLocked()
}

// Add appends a new category and persists the collection. An empty name is
// rejected. The returned error may also be a write failure; the in-memory
// append has happened either way and disk catches up on the next successful
// write.
func (s *Store) Add(name string) (category.Category, error) {
	c, err := category.New(name)
	if err != nil {
		return category.Category{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureDefaultsLocked()
	s.items = append(s.items, c)
	s.publishLocked()
	if err := s.persistLocked(); err != nil {
		return c, err
	}
	return c, nil
}

// List returns a snapshot of the current collection.
func (s *Store) List() []category.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Find returns the first category with the given name.
func (s *Store) Find(name string) (category.Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.items {
		if c.Name == name {
			return c, true
		}
	}
	return category.Category{}, false
}

// Subscribe returns a channel receiving a fresh snapshot after every
// mutation. Slow subscribers miss intermediate snapshots rather than block
// mutations.
func (s *Store) Subscribe() <-chan []category.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan []category.Category, 16)
	s.subs = append(s.subs, ch)
	return ch
}

func (s *Store) snapshotLocked() []category.Category {
	snapshot := make([]category.Category, len(s.items))
	copy(snapshot, s.items)
	return snapshot
}

func (s *Store) publishLocked() {
	for _, ch := range s.subs {
		select {
		case ch <- s.snapshotLocked():
		default:
		}
	}
}

func (s *Store) persistLocked() error {
	data, err := category.MarshalList(s.items)
	if err != nil {
		return err
	}
	return s.gateway.Save(DocumentName, data)
}
