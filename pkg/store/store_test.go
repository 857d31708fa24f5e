package store

import (
	"errors"
	"testing"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func TestGatewayRoundTrip(t *testing.T) {
	g, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load gateway: %v", err)
	}

	payload := []byte(`[{"id":"a","name":"Personal"}]`)
	if err := g.Save("taskTypes", payload); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := g.Load("taskTypes")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != string(payload) {
		t.Fatalf("expected %s, got %s", payload, got)
	}
}

func TestGatewayLoadMissingIsNotFound(t *testing.T) {
	g, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load gateway: %v", err)
	}

	if _, err := g.Load("tasks"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGatewaySaveOverwrites(t *testing.T) {
	g, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load gateway: %v", err)
	}

	if err := g.Save("tasks", []byte("[]")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := g.Save("tasks", []byte(`[{"id":"x"}]`)); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := g.Load("tasks")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != `[{"id":"x"}]` {
		t.Fatalf("expected latest write, got %s", got)
	}
}

func TestGatewayRejectsEmptyName(t *testing.T) {
	g, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load gateway: %v", err)
	}

	if err := g.Save("  ", []byte("[]")); err == nil {
		t.Fatalf("expected error for empty document name")
	}
}
