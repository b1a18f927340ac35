package exporter

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveWritesFile(t *testing.T) {
	dir := t.TempDir()

	path, err := Save(dir, "equations", "notebook body")
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if want := filepath.Join(dir, "equations.txt"); path != want {
		t.Errorf("Save() path = %s, want %s", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "notebook body" {
		t.Errorf("content = %q, want %q", data, "notebook body")
	}
}

func TestSaveAvoidsClobbering(t *testing.T) {
	dir := t.TempDir()

	wants := []struct {
		content string
		file    string
	}{
		{"first", "equations.txt"},
		{"second", "equations0.txt"},
		{"third", "equations1.txt"},
	}
	for _, want := range wants {
		path, err := Save(dir, "equations", want.content)
		if err != nil {
			t.Fatalf("Save(%q) error = %v", want.content, err)
		}
		if got := filepath.Base(path); got != want.file {
			t.Errorf("Save(%q) file = %s, want %s", want.content, got, want.file)
		}
	}

	for _, want := range wants {
		data, err := os.ReadFile(filepath.Join(dir, want.file))
		if err != nil {
			t.Fatalf("ReadFile(%s) error = %v", want.file, err)
		}
		if string(data) != want.content {
			t.Errorf("%s content = %q, want %q", want.file, data, want.content)
		}
	}
}

func TestSaveRejectsMissingDir(t *testing.T) {
	if _, err := Save(filepath.Join(t.TempDir(), "missing"), "equations", "x"); err == nil {
		t.Fatal("Save() expected an error for a missing directory")
	}
}

func TestSaveRejectsNonDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "occupied")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := Save(file, "equations", "x"); err == nil {
		t.Fatal("Save() expected an error for a non-directory path")
	}
}

func TestSaveRequiresName(t *testing.T) {
	if _, err := Save(t.TempDir(), "", "x"); err == nil {
		t.Fatal("Save() expected an error for an empty name")
	}
}
