package store

import (
	"context"
	"testing"
	"time"
)

func TestGatewayWatchEmitsDocumentChanges(t *testing.T) {
	base := t.TempDir()
	g, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load gateway: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := g.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if err := g.Save("tasks", []byte("[]")); err != nil {
		t.Fatalf("save: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Name == "tasks" {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for document change event")
		}
	}
}

func TestGatewayWatchClosesOnCancel(t *testing.T) {
	g, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load gateway: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := g.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	select {
	case _, ok := <-ch:
		if ok {
			// Drain a stray event; closure follows.
			select {
			case _, ok := <-ch:
				if ok {
					t.Fatal("expected channel to close after cancel")
				}
			case <-time.After(2 * time.Second):
				t.Fatal("timed out waiting for channel close")
			}
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}
