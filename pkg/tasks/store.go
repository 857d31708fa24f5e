// Package tasks owns the authoritative task collection: mutations apply in
// memory, rewrite durable storage synchronously, and publish snapshots to
// subscribers.
package tasks

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"tableflip.dev/agenda/pkg/category"
	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/task"
)

// DocumentName is the logical storage name for the task collection.
const DocumentName = "tasks"

// Store owns the in-memory task collection. Every mutation rewrites the
// whole persisted document before returning.
type Store struct {
	mu      sync.Mutex
	gateway store.Gateway
	items   []task.Task
	subs    []chan []task.Task

	// now is the clock used when seeding sample tasks.
	now func() time.Time
}

// NewStore wires a store to its persistence gateway. Call Load before use.
func NewStore(g store.Gateway) *Store {
	return &Store{gateway: g, now: time.Now}
}

// Load reads the persisted collection. First run (absent or empty storage)
// seeds two sample tasks and persists them so a restart sees the same two.
// Unreadable or corrupt storage is logged and degrades to an empty
// collection without touching the broken document.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.gateway.Load(DocumentName)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.seedLocked()
			return
		}
		fmt.Fprintf(os.Stderr, "tasks: load: %v\n", err)
		s.items = []task.Task{}
		s.publishLocked()
		return
	}
	items, err := task.UnmarshalList(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tasks: decode: %v\n", err)
		s.items = []task.Task{}
		s.publishLocked()
		return
	}
	if len(items) == 0 {
		s.seedLocked()
		return
	}
	s.items = items
	s.publishLocked()
}

func (s *Store) seedLocked() {
	now := s.now()
	starter := category.Placeholder()
	s.items = []task.Task{
		*task.New("Plan the week", now.Add(2*time.Hour), starter),
		*task.New("Clear the inbox", now.Add(26*time.Hour), starter),
	}
	if err := s.persistLocked(); err != nil {
		fmt.Fprintf(os.Stderr, "tasks: persist samples: %v\n", err)
	}
	s.publishLocked()
}

// Add appends a new task and persists the collection. A zero category gets
// the synthesized placeholder. A returned error is a write failure; the
// in-memory append has happened either way.
func (s *Store) Add(title string, due time.Time, c category.Category) (task.Task, error) {
	t := *task.New(title, due, c)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, t)
	s.publishLocked()
	if err := s.persistLocked(); err != nil {
		return t, err
	}
	return t, nil
}

// Delete removes the task with the given id. A missing id is a no-op, not
// an error; the collection persists either way.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	s.publishLocked()
	return s.persistLocked()
}

// ToggleCompletion flips the completed flag on the matching task. A missing
// id is a no-op.
func (s *Store) ToggleCompletion(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Completed = !s.items[i].Completed
			break
		}
	}
	s.publishLocked()
	return s.persistLocked()
}

// Update replaces title, due date, and category of the matching task in
// place, preserving id and completion state. A missing id is a no-op.
func (s *Store) Update(id, title string, due time.Time, c category.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			if c.ID == "" {
				c = s.items[i].Category
			}
			s.items[i].Title = title
			s.items[i].Due = task.Timestamp{Time: due}
			s.items[i].Category = c
			break
		}
	}
	s.publishLocked()
	return s.persistLocked()
}

// List returns a snapshot of the current collection.
func (s *Store) List() []task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Get returns the task with the given id.
func (s *Store) Get(id string) (task.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.items {
		if t.ID == id {
			return t, true
		}
	}
	return task.Task{}, false
}

// Subscribe returns a channel receiving a fresh snapshot after every
// mutation. Slow subscribers miss intermediate snapshots rather than block
// mutations.
func (s *Store) Subscribe() <-chan []task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan []task.Task, 16)
	s.subs = append(s.subs, ch)
	return ch
}

func (s *Store) snapshotLocked() []task.Task {
	snapshot := make([]task.Task, len(s.items))
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
	data, err := task.MarshalList(s.items)
	if err != nil {
		return err
	}
	return s.gateway.Save(DocumentName, data)
}
