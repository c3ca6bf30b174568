package storage

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
)

func TestSaveAndReadFile(t *testing.T) {
	s := &Storage{}
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.yaml")

	if _, err := s.GetFileStats(path); err == nil {
		t.Fatal("GetFileStats() succeeded before save")
	}
	if err := s.SaveFile(path, []byte("hello")); err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}
	data, err := s.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("ReadFile() = %q, want %q", data, "hello")
	}

	stats, err := s.GetFileStats(path)
	if err != nil {
		t.Fatalf("GetFileStats() error = %v", err)
	}
	if stats.SizeBytes != 5 {
		t.Errorf("SizeBytes = %d, want 5", stats.SizeBytes)
	}
}

func TestReadFile_Missing(t *testing.T) {
	s := &Storage{}
	_, err := s.ReadFile(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile() error = %v, want fs.ErrNotExist", err)
	}
}
