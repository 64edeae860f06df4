package scan_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"photoflow/internal/scan"
	"photoflow/internal/services"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestScanOrdersByPath(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.jpg", "a.jpg", "c.jpg"} {
		writeFile(t, filepath.Join(dir, name))
	}

	items, err := scan.Scan(dir, scan.Options{})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	got := make([]string, 0, len(items))
	for _, item := range items {
		got = append(got, item.Name)
	}
	want := []string{"a.jpg", "b.jpg", "c.jpg"}
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestScanFiltersUnsupportedExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "keep.JPG"))
	writeFile(t, filepath.Join(dir, "keep.cr2"))
	writeFile(t, filepath.Join(dir, "skip.txt"))
	writeFile(t, filepath.Join(dir, "skip.png"))

	items, err := scan.Scan(dir, scan.Options{})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	for _, item := range items {
		if item.Name != "keep.JPG" && item.Name != "keep.cr2" {
			t.Fatalf("unexpected item %q", item.Name)
		}
	}
}

func TestScanNonRecursiveSkipsSubdirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "top.jpg"))
	writeFile(t, filepath.Join(dir, "nested", "deep.jpg"))

	items, err := scan.Scan(dir, scan.Options{})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if len(items) != 1 || items[0].Name != "top.jpg" {
		t.Fatalf("expected only top-level file, got %v", items)
	}

	items, err = scan.Scan(dir, scan.Options{Recursive: true})
	if err != nil {
		t.Fatalf("recursive Scan returned error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items recursively, got %d", len(items))
	}
}

func TestScanMissingDirectory(t *testing.T) {
	_, err := scan.Scan(filepath.Join(t.TempDir(), "nope"), scan.Options{})
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	if !errors.Is(err, services.ErrDirectoryNotFound) {
		t.Fatalf("expected ErrDirectoryNotFound, got %v", err)
	}
}

func TestScanModTimeOrder(t *testing.T) {
	dir := t.TempDir()
	older := filepath.Join(dir, "z_old.jpg")
	newer := filepath.Join(dir, "a_new.jpg")
	writeFile(t, older)
	writeFile(t, newer)

	base := time.Now().Add(-time.Hour)
	if err := os.Chtimes(older, base, base); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	if err := os.Chtimes(newer, base.Add(time.Minute), base.Add(time.Minute)); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	items, err := scan.Scan(dir, scan.Options{Order: scan.OrderModTime})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if items[0].Name != "z_old.jpg" || items[1].Name != "a_new.jpg" {
		t.Fatalf("expected modtime order old->new, got %v", items)
	}
}

func TestInputItemStem(t *testing.T) {
	item := scan.InputItem{Name: "IMG_0001.CR2"}
	if item.Stem() != "IMG_0001" {
		t.Fatalf("expected stem IMG_0001, got %q", item.Stem())
	}
}
