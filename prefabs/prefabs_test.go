package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func useDir(t *testing.T, dir string) {
	t.Helper()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })
}

func TestLoadCatalogSpecEmbedded(t *testing.T) {
	useDir(t, t.TempDir())

	spec, err := LoadCatalogSpec()
	if err != nil {
		t.Fatalf("LoadCatalogSpec: %v", err)
	}
	if len(spec.Variants) == 0 {
		t.Fatalf("embedded catalog has no variants")
	}
	if spec.Defaults.Speed <= 0 || spec.Defaults.DeathDurationFrames <= 0 {
		t.Fatalf("defaults = %+v", spec.Defaults)
	}
}

func TestLoadPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	useDir(t, dir)

	yaml := "variants:\n  - key: ghost\n    base_path: ./Assets/Ghost\n    sprites:\n      idle: Idle.png\n"
	if err := os.WriteFile(filepath.Join(dir, CatalogFile), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{CatalogFile, "prefabs/" + CatalogFile} {
		spec, err := LoadSpec[CatalogSpec](name)
		if err != nil {
			t.Fatalf("load %s: %v", name, err)
		}
		if len(spec.Variants) != 1 || spec.Variants[0].Key != "ghost" {
			t.Fatalf("load %s: variants = %+v", name, spec.Variants)
		}
		if spec.Variants[0].Sprites["idle"] != "Idle.png" {
			t.Fatalf("sprites = %v", spec.Variants[0].Sprites)
		}
	}
}

func TestParseCatalogSpecRejectsGarbage(t *testing.T) {
	if _, err := ParseCatalogSpec([]byte("variants: {not: [a list")); err == nil {
		t.Fatalf("expected a yaml error")
	}
}

func TestLoadSpecMissing(t *testing.T) {
	useDir(t, t.TempDir())
	if _, err := LoadSpec[CatalogSpec]("nope.yaml"); err == nil {
		t.Fatalf("expected an error for a missing prefab")
	}
}

func TestWatcherReportsYAMLWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, CatalogFile), []byte("variants: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if name != CatalogFile {
			t.Fatalf("event for %q, want %q", name, CatalogFile)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no event for %s", CatalogFile)
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if _, ok := <-w.Events; ok {
		t.Fatalf("events should be closed")
	}
}
