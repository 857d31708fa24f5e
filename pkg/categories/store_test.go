package categories

import (
	"errors"
	"testing"

	"tableflip.dev/agenda/pkg/category"
	"tableflip.dev/agenda/pkg/store"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func newTestStore(t *testing.T) (*Store, store.Gateway) {
	t.Helper()
	g, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load gateway: %v", err)
	}
	return NewStore(g), g
}

func TestLoadSeedsDefaults(t *testing.T) {
	s, g := newTestStore(t)
	s.Load()

	seeded := s.List()
	if len(seeded) != 3 {
		t.Fatalf("expected 3 default categories, got %d", len(seeded))
	}

	restarted := NewStore(g)
	restarted.Load()
	again := restarted.List()
	if len(again) != 3 {
		t.Fatalf("expected persisted defaults after restart, got %d", len(again))
	}
	for i := range seeded {
		if again[i] != seeded[i] {
			t.Fatalf("restart returned different categories")
		}
	}
}

func TestAddOnUnseededStoreSeedsFirst(t *testing.T) {
	s, _ := newTestStore(t)
	// No Load: the store is empty and unseeded.

	added, err := s.Add("Health")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if added.Name != "Health" {
		t.Fatalf("unexpected category: %+v", added)
	}

	all := s.List()
	if len(all) != 4 {
		t.Fatalf("expected 3 defaults plus Health, got %d", len(all))
	}
	if all[3].Name != "Health" {
		t.Fatalf("expected Health appended last, got %q", all[3].Name)
	}
}

func TestAddRejectsEmptyName(t *testing.T) {
	s, _ := newTestStore(t)
	s.Load()

	if _, err := s.Add("   "); !errors.Is(err, category.ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
	if len(s.List()) != 3 {
		t.Fatalf("rejected add must not grow the collection")
	}
}

func TestAddPersistsWriteThrough(t *testing.T) {
	s, g := newTestStore(t)
	s.Load()

	added, err := s.Add("Errands")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	restarted := NewStore(g)
	restarted.Load()
	if _, ok := restarted.Find(added.Name); !ok {
		t.Fatalf("added category not found after restart")
	}
}

func TestLoadEmptyDocumentSeedsDefaults(t *testing.T) {
	for _, doc := range [][]byte{{}, []byte("[]")} {
		s, g := newTestStore(t)
		if err := g.Save(DocumentName, doc); err != nil {
			t.Fatalf("save: %v", err)
		}

		s.Load()
		if got := len(s.List()); got != 3 {
			t.Fatalf("expected 3 defaults after loading empty document %q, got %d", doc, got)
		}

		// Seeding must hold for later mutations too, not just this load.
		if _, err := s.Add("Health"); err != nil {
			t.Fatalf("add: %v", err)
		}
		if got := len(s.List()); got != 4 {
			t.Fatalf("expected defaults plus Health, got %d", got)
		}
	}
}

func TestLoadCorruptStorageReseedsDefaults(t *testing.T) {
	s, g := newTestStore(t)
	if err := g.Save(DocumentName, []byte("nope]")); err != nil {
		t.Fatalf("save: %v", err)
	}

	s.Load()
	if len(s.List()) != 3 {
		t.Fatalf("expected defaults after corrupt load, got %d", len(s.List()))
	}
}

func TestEnsureDefaultsIsIdempotent(t *testing.T) {
	s, _ := newTestStore(t)
	s.EnsureDefaults()
	s.EnsureDefaults()
	if len(s.List()) != 3 {
		t.Fatalf("expected exactly 3 defaults, got %d", len(s.List()))
	}
}

func TestFind(t *testing.T) {
	s, _ := newTestStore(t)
	s.Load()

	c, ok := s.Find("Work")
	if !ok || c.Name != "Work" {
		t.Fatalf("expected to find Work, got %+v ok=%v", c, ok)
	}
	if _, ok := s.Find("Nope"); ok {
		t.Fatalf("found a category that does not exist")
	}
}

func TestSubscribePublishesOnMutation(t *testing.T) {
	s, _ := newTestStore(t)
	s.Load()
	ch := s.Subscribe()

	if _, err := s.Add("Garden"); err != nil {
		t.Fatalf("add: %v", err)
	}

	select {
	case snapshot := <-ch:
		if len(snapshot) != 4 {
			t.Fatalf("expected snapshot of 4, got %d", len(snapshot))
		}
	default:
		t.Fatalf("expected a snapshot buffered before Add returned")
	}
}
