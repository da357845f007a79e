package input

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCollectorCollect(t *testing.T) {
	tempDir := t.TempDir()
	for _, name := range []string{"b.xz", "a.xz"} {
		if err := os.WriteFile(filepath.Join(tempDir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(tempDir, "subdir"), 0755); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	previewed := ""
	c := &Collector{
		In:  strings.NewReader("a.xz\n2026-01-22 12:00\n2026-01-22 12:10\n"),
		Out: &out,
		Preview: func(archive string) {
			previewed = archive
		},
	}

	w, err := c.Collect(tempDir)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	if w.Archive != "a.xz" {
		t.Errorf("Expected archive a.xz, got %s", w.Archive)
	}
	if w.Start != "2026-01-22 12:00" || w.End != "2026-01-22 12:10" {
		t.Errorf("Unexpected window: %+v", w)
	}
	if previewed != "a.xz" {
		t.Errorf("Preview not called with archive, got %q", previewed)
	}

	listing := out.String()
	if !strings.Contains(listing, "a.xz") || !strings.Contains(listing, "b.xz") {
		t.Errorf("File listing missing entries:\n%s", listing)
	}
	if strings.Contains(listing, "subdir") {
		t.Error("Directories should not appear in the file listing")
	}
	if strings.Index(listing, "a.xz") > strings.Index(listing, "b.xz") {
		t.Error("File listing should be sorted")
	}
}

func TestCollectorInputClosed(t *testing.T) {
	c := &Collector{
		In:  strings.NewReader(""),
		Out: &bytes.Buffer{},
	}

	if _, err := c.Collect(t.TempDir()); err == nil {
		t.Error("Expected error when input closes early")
	}
}

func TestCollectorTrimsWhitespace(t *testing.T) {
	c := &Collector{
		In:  strings.NewReader("  demo.xz  \n 2026-01-22 12:00\n2026-01-22 12:10 \n"),
		Out: &bytes.Buffer{},
	}

	w, err := c.Collect(t.TempDir())
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if w.Archive != "demo.xz" {
		t.Errorf("Expected trimmed archive, got %q", w.Archive)
	}
	if w.Start != "2026-01-22 12:00" {
		t.Errorf("Expected trimmed start, got %q", w.Start)
	}
}
