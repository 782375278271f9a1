package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolve(t *testing.T) {
	p, err := resolve("two-and")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Comp) != 2 {
		t.Errorf("expected 2 components, got %d", len(p.Comp))
	}
	if _, err := resolve("no-such-problem"); err == nil {
		t.Errorf("expected an error for an unknown problem")
	}
}

func TestResolveYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.yaml")
	doc := "name: net\ngates:\n  - name: g\n    kind: and\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := resolve(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Comp) != 1 {
		t.Errorf("expected 1 component, got %d", len(p.Comp))
	}
	if _, err := resolve(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}
